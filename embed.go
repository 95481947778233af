package stackboard

import "embed"

// EmailFS holds the embedded email templates, grouped one directory
// per template with html.tmpl and plaintext.tmpl variants.
//
//go:embed templates/emails
var EmailFS embed.FS
