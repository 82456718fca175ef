package email

import (
	"encoding/base64"
	"strings"
	"testing"

	"xray-education-service/config"
)

func testSender() *Sender {
	cfg := &config.Config{
		SendGridAPIKey:    "test-key",
		SendGridFromName:  "X-Ray Education",
		SendGridFromEmail: "reports@example.org",
	}
	return NewSender(cfg)
}

func TestBuildMessageWithOverlay(t *testing.T) {
	s := testSender()

	document := "RADIOLOGY REPORT - EDUCATIONAL CASE"
	overlay := []byte{0x89, 0x50, 0x4e, 0x47}

	message := s.buildMessage("learner@example.org", "CASE_20260115_103000", document, overlay)

	if message.Subject != "Radiology teaching report CASE_20260115_103000" {
		t.Errorf("buildMessage(): unexpected subject: %s", message.Subject)
	}
	if message.From.Address != "reports@example.org" {
		t.Errorf("buildMessage(): unexpected from address: %s", message.From.Address)
	}

	if len(message.Personalizations) != 1 || len(message.Personalizations[0].To) != 1 {
		t.Fatalf("buildMessage(): expected one recipient")
	}
	if message.Personalizations[0].To[0].Address != "learner@example.org" {
		t.Errorf("buildMessage(): unexpected recipient: %s", message.Personalizations[0].To[0].Address)
	}

	if len(message.Attachments) != 2 {
		t.Fatalf("buildMessage(): expected 2 attachments, got %d", len(message.Attachments))
	}

	reportAttachment := message.Attachments[0]
	if reportAttachment.Filename != "CASE_20260115_103000_report.txt" {
		t.Errorf("buildMessage(): unexpected report filename: %s", reportAttachment.Filename)
	}
	decoded, err := base64.StdEncoding.DecodeString(reportAttachment.Content)
	if err != nil {
		t.Fatalf("buildMessage(): report attachment is not valid base64: %v", err)
	}
	if string(decoded) != document {
		t.Errorf("buildMessage(): report attachment content mismatch")
	}

	overlayAttachment := message.Attachments[1]
	if overlayAttachment.ContentID != overlayImgCid {
		t.Errorf("buildMessage(): unexpected overlay content id: %s", overlayAttachment.ContentID)
	}
	if overlayAttachment.Disposition != "inline" {
		t.Errorf("buildMessage(): expected inline overlay, got %s", overlayAttachment.Disposition)
	}
}

func TestBuildMessageWithoutOverlay(t *testing.T) {
	s := testSender()

	message := s.buildMessage("learner@example.org", "CASE_20260115_103000", "doc", nil)

	if len(message.Attachments) != 1 {
		t.Fatalf("buildMessage(): expected 1 attachment, got %d", len(message.Attachments))
	}

	for _, content := range message.Content {
		if content.Type == "text/html" && strings.Contains(content.Value, "cid:"+overlayImgCid) {
			t.Errorf("buildMessage(): HTML references overlay image that was not attached")
		}
	}
}

func TestEmailTextCarriesDisclaimer(t *testing.T) {
	s := testSender()

	text := s.getEmailText("CASE_20260115_103000")
	if !strings.Contains(text, "educational purposes only") {
		t.Errorf("getEmailText(): missing educational disclaimer")
	}
	if !strings.Contains(text, "CASE_20260115_103000") {
		t.Errorf("getEmailText(): missing case ID")
	}
}
