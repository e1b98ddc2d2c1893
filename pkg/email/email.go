package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
)

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type InquiryNotificationData struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Service   string
	Message   string
}

// GlobalEmailService is nil when no Resend key is configured; callers
// check before sending.
var GlobalEmailService *EmailService

func InitEmailService(apiKey string) error {
	service, err := NewEmailService(apiKey)
	if err != nil {
		return err
	}
	GlobalEmailService = service
	return nil
}

func NewEmailService(apiKey string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      "PrimeGate Properties <noreply@primegateproperties.com>",
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	return nil
}

// SendInquiryNotification forwards a contact-form submission to the
// brokerage inbox.
func (s *EmailService) SendInquiryNotification(inbox string, data InquiryNotificationData) error {
	subject := fmt.Sprintf("New Inquiry from %s %s", data.FirstName, data.LastName)
	return s.sendTemplateEmail(inbox, subject, "inquiry_notification.html", data)
}
