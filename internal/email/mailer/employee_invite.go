// internal/email/mailer/employee_invite.go
package mailer

import "github.com/stackboard/stackboard/internal/email"

// InviteTemplateData contains data for the employee invite email template
type InviteTemplateData struct {
	FirstName        string
	OrganizationName string
	InitialPassword  string
}

// SendEmployeeInvite mails a newly created employee their initial
// credentials.
func SendEmployeeInvite(s *email.Service, to, firstName, orgName, initialPassword string) error {
	templateData := InviteTemplateData{
		FirstName:        firstName,
		OrganizationName: orgName,
		InitialPassword:  initialPassword,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Stackboard",
		Subject:      "You have been added to " + orgName + " on Stackboard",
		TemplateName: "employee_invite",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
