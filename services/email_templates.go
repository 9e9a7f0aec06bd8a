package services

import (
	"html/template"
	"strings"
)

func courseUpper(s string) string { return strings.ToUpper(s) }

func newEmailTemplate(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"upper": courseUpper,
	}).Parse(body))
}

var acknowledgmentTemplate = newEmailTemplate("acknowledgment", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #003366; padding: 20px; text-align: center; color: white;">
    <h1>GCGPWS College</h1>
  </div>
  <div style="padding: 20px; border: 1px solid #ddd; border-top: none;">
    <p>Dear {{.FirstName}} {{.LastName}},</p>
    <p>We are pleased to confirm that we have received your application for admission to our <strong>{{upper .Course}}</strong> program.</p>
    <p>Your application reference number is: <strong>{{.ReferenceNo}}</strong></p>
    <p>Our admissions team will review your application and contact you soon. You can check your application status through our portal.</p>
    <p>If you have any questions, please contact our admissions office.</p>
    <p>Thank you for considering GCGPWS College for your educational journey.</p>
    <p>Best regards,<br>Admissions Team<br>GCGPWS College</p>
  </div>
  <div style="background-color: #f0f0f0; padding: 15px; text-align: center; font-size: 12px;">
    <p>This is an automated message. Please do not reply to this email.</p>
  </div>
</div>
`)

var approvalTemplate = newEmailTemplate("approval", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #006633; padding: 20px; text-align: center; color: white;">
    <h1>GCGPWS College</h1>
    <h2>Application Approved!</h2>
  </div>
  <div style="padding: 20px; border: 1px solid #ddd; border-top: none;">
    <p>Dear {{.FirstName}} {{.LastName}},</p>
    <p>Congratulations! We are pleased to inform you that your application for admission to our <strong>{{upper .Course}}</strong> program has been <strong>APPROVED</strong>.</p>
    <p>Please visit our campus with the following documents within the next 7 days to complete your admission process:</p>
    <ul>
      <li>Original academic certificates</li>
      <li>ID proof</li>
      <li>Passport sized photographs</li>
      <li>Application fee receipt</li>
    </ul>
    <p>If you have any questions, please contact our admissions office.</p>
    <p>We look forward to welcoming you to GCGPWS College!</p>
    <p>Best regards,<br>Admissions Team<br>GCGPWS College</p>
  </div>
  <div style="background-color: #f0f0f0; padding: 15px; text-align: center; font-size: 12px;">
    <p>This is an automated message. Please do not reply to this email.</p>
  </div>
</div>
`)

var rejectionTemplate = newEmailTemplate("rejection", `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #003366; padding: 20px; text-align: center; color: white;">
    <h1>GCGPWS College</h1>
  </div>
  <div style="padding: 20px; border: 1px solid #ddd; border-top: none;">
    <p>Dear {{.FirstName}} {{.LastName}},</p>
    <p>Thank you for your interest in our <strong>{{upper .Course}}</strong> program at GCGPWS College.</p>
    <p>After careful review of your application, we regret to inform you that we are unable to offer you admission at this time.</p>
    {{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
    <p>We encourage you to explore other programs or reapply in the next admission cycle.</p>
    <p>If you have any questions or would like further clarification, please contact our admissions office.</p>
    <p>We wish you success in your future educational endeavors.</p>
    <p>Best regards,<br>Admissions Team<br>GCGPWS College</p>
  </div>
  <div style="background-color: #f0f0f0; padding: 15px; text-align: center; font-size: 12px;">
    <p>This is an automated message. Please do not reply to this email.</p>
  </div>
</div>
`)
