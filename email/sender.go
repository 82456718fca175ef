// Package email delivers exported teaching reports over SendGrid.
package email

import (
	"encoding/base64"
	"fmt"

	"xray-education-service/config"

	"github.com/apex/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const overlayImgCid = "overlay_image"

// Sender handles report email delivery
type Sender struct {
	config *config.Config
	client *sendgrid.Client
}

// NewSender creates a new report email sender
func NewSender(cfg *config.Config) *Sender {
	client := sendgrid.NewSendClient(cfg.SendGridAPIKey)
	return &Sender{
		config: cfg,
		client: client,
	}
}

// SendReport emails the exported report document as a text attachment,
// with the annotated CTR overlay inline when one is provided.
func (s *Sender) SendReport(recipient, caseID, document string, overlayImage []byte) error {
	message := s.buildMessage(recipient, caseID, document, overlayImage)

	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected report email: status %d", response.StatusCode)
	}

	log.Infof("Report %s emailed to %s! Status: %d", caseID, recipient, response.StatusCode)
	return nil
}

// buildMessage assembles the SendGrid message for one recipient
func (s *Sender) buildMessage(recipient, caseID, document string, overlayImage []byte) *mail.SGMailV3 {
	from := mail.NewEmail(s.config.SendGridFromName, s.config.SendGridFromEmail)
	subject := fmt.Sprintf("Radiology teaching report %s", caseID)
	to := mail.NewEmail(recipient, recipient)

	message := mail.NewV3Mail()
	message.SetFrom(from)
	message.Subject = subject

	p := mail.NewPersonalization()
	p.AddTos(to)
	message.AddPersonalizations(p)

	message.AddContent(mail.NewContent("text/plain", s.getEmailText(caseID)))
	message.AddContent(mail.NewContent("text/html", s.getEmailHtml(caseID, len(overlayImage) > 0)))

	reportAttachment := mail.NewAttachment()
	reportAttachment.SetContent(base64.StdEncoding.EncodeToString([]byte(document)))
	reportAttachment.SetType("text/plain")
	reportAttachment.SetFilename(fmt.Sprintf("%s_report.txt", caseID))
	reportAttachment.SetDisposition("attachment")
	message.AddAttachment(reportAttachment)

	if len(overlayImage) > 0 {
		overlayAttachment := mail.NewAttachment()
		overlayAttachment.SetContent(base64.StdEncoding.EncodeToString(overlayImage))
		overlayAttachment.SetType("image/png")
		overlayAttachment.SetFilename("ctr_overlay.png")
		overlayAttachment.SetDisposition("inline")
		overlayAttachment.SetContentID(overlayImgCid)
		message.AddAttachment(overlayAttachment)
	}

	return message
}

// getEmailText returns the plain text content for report emails
func (s *Sender) getEmailText(caseID string) string {
	return fmt.Sprintf(`Hello,

Your radiology teaching report %s is attached as a text document.

This material is generated for educational purposes only and is not a
medical diagnosis. Always consult qualified healthcare professionals for
actual medical interpretation.

Best regards,
The X-Ray Education Team`, caseID)
}

// getEmailHtml returns the HTML content for report emails
func (s *Sender) getEmailHtml(caseID string, hasOverlay bool) string {
	overlaySection := ""
	if hasOverlay {
		overlaySection = fmt.Sprintf(`
    <h3>CTR Measurement Overlay:</h3>
    <img src="cid:%s" alt="CTR Overlay" style="max-width: 100%%; height: auto;">
`, overlayImgCid)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Radiology Teaching Report %s</title>
</head>
<body>
    <h2>Hello,</h2>
    <p>Your radiology teaching report <strong>%s</strong> is attached as a text document.</p>
    %s
    <p><em>This material is generated for educational purposes only and is not
    a medical diagnosis. Always consult qualified healthcare professionals for
    actual medical interpretation.</em></p>

    <p>Best regards,<br>The X-Ray Education Team</p>
</body>
</html>`, caseID, caseID, overlaySection)
}
