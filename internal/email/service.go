package emailService

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"path/filepath"
)

const (
	subjectWelcome  = "Welcome to ExpenseTracker"
	templateWelcome = "welcome.html"
	subjectDigest   = "Your daily spending digest"
	templateDigest  = "daily_digest.html"
)

type EmailData interface {
	TemplateFileName() string
	Subject() string
}

type EmailSender interface {
	QueueEmail(to string, data EmailData)
}

type WelcomeData struct {
	UserName string
}

func (w WelcomeData) TemplateFileName() string {
	return templateWelcome
}

func (w WelcomeData) Subject() string {
	return subjectWelcome
}

type DailyDigestData struct {
	UserName string
	Date     string
	Income   string
	Expense  string
	Balance  string
	Entries  int
}

func (d DailyDigestData) TemplateFileName() string {
	return templateDigest
}

func (d DailyDigestData) Subject() string {
	return subjectDigest
}

type Config struct {
	From         string
	Password     string
	TemplatesDir string
	SMTPHost     string
	SMTPPort     string
}

type EmailService struct {
	from         string
	password     string
	templatesDir string
	smtpHost     string
	smtpPort     string
	taskQueue    chan EmailTask
}

type EmailTask struct {
	to           string
	templateFile string
	data         EmailData
	subject      string
}

// NewEmailService starts a background worker draining the send queue.
// Sending is best effort: a failed delivery is logged, never propagated to
// the request that queued it.
func NewEmailService(config Config) *EmailService {
	service := &EmailService{
		from:         config.From,
		password:     config.Password,
		templatesDir: config.TemplatesDir,
		smtpHost:     config.SMTPHost,
		smtpPort:     config.SMTPPort,
		taskQueue:    make(chan EmailTask, 100),
	}
	go service.worker()
	return service
}

func (s *EmailService) worker() {
	for task := range s.taskQueue {
		err := s.sendTemplatedEmail(task.to, task.templateFile, task.data, task.subject)
		if err != nil {
			log.Printf("Error sending email to %s: %v", task.to, err)
		}
	}
}

func (s *EmailService) QueueEmail(to string, data EmailData) {
	s.taskQueue <- EmailTask{to, data.TemplateFileName(), data, data.Subject()}
}

func (s *EmailService) sendTemplatedEmail(to, templateFileName string, data EmailData, subject string) error {
	templatePath := filepath.Join(s.templatesDir, templateFileName)
	if _, err := os.Stat(templatePath); os.IsNotExist(err) {
		return fmt.Errorf("template file does not exist: %v", err)
	}

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("error parsing template: %v", err)
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, data)
	if err != nil {
		return fmt.Errorf("error executing template: %v", err)
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\";\r\n\r\n" +
		body.String())

	auth := smtp.PlainAuth("", s.from, s.password, s.smtpHost)
	err = smtp.SendMail(s.smtpHost+":"+s.smtpPort, auth, s.from, []string{to}, message)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
