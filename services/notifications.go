package services

import (
	"fmt"
	"strings"

	"github.com/badapples/registry/models"
)

const notificationFooter = `
---
This is an automated notification from the Bad Apples Database.`

// newReportNotification informs staff of a new public submission
func newReportNotification(recipients []string, adminURL, reportType string, reportID int64) models.Notification {
	body := fmt.Sprintf(`A new %s report has been submitted to the Bad Apples Database.

Report ID: %d
Type: %s

Please review this report in the admin panel:
%s
%s`, reportType, reportID, reportType, adminURL, notificationFooter)

	return models.Notification{
		Subject:    fmt.Sprintf("New %s Report Submitted", titleCase(reportType)),
		Recipients: recipients,
		Body:       body,
	}
}

// newDisputeNotification informs staff of a new dispute
func newDisputeNotification(recipients []string, adminURL string, dispute *models.Dispute) models.Notification {
	body := fmt.Sprintf(`A new dispute has been submitted to the Bad Apples Database.

Dispute ID: %d
Record Type: %s
Record ID: %d

Please review this dispute in the admin panel:
%s
%s`, dispute.ID, dispute.TableName, dispute.RecordID, adminURL, notificationFooter)

	return models.Notification{
		Subject:    fmt.Sprintf("New Dispute Submitted - %s #%d", dispute.TableName, dispute.RecordID),
		Recipients: recipients,
		Body:       body,
	}
}

// disputeResolutionNotification tells the disputer how their dispute ended
func disputeResolutionNotification(dispute *models.Dispute) models.Notification {
	var resolution string
	if dispute.Resolution != "" {
		resolution = "Resolution: " + dispute.Resolution
	}

	body := fmt.Sprintf(`Your dispute has been reviewed and %s.

Dispute ID: %d
Record Type: %s
Record ID: %d
Status: %s

%s

Thank you for helping us maintain the accuracy of the Bad Apples Database.
%s`, dispute.Status, dispute.ID, dispute.TableName, dispute.RecordID,
		strings.ToUpper(string(dispute.Status)), resolution, notificationFooter)

	return models.Notification{
		Subject:    fmt.Sprintf("Dispute Resolution - %s #%d", dispute.TableName, dispute.RecordID),
		Recipients: []string{dispute.DisputerEmail},
		Body:       body,
	}
}

// titleCase upper-cases the first letter of every word, where words are
// separated by anything that is not a letter
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && startOfWord:
			b.WriteString(strings.ToUpper(string(r)))
		case isLetter:
			b.WriteString(strings.ToLower(string(r)))
		default:
			b.WriteRune(r)
		}
		startOfWord = !isLetter
	}
	return b.String()
}
