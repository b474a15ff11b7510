package notification

import "fmt"

// TeamCreated builds the message sent to a leader after team creation.
func TeamCreated(teamName string) (subject, body string) {
	subject = "Your team is registered"
	body = fmt.Sprintf(
		"Hi,\n\nYour team %q has been registered for the hackathon. "+
			"You can now submit your project idea from the portal.\n\nGood luck!",
		teamName)
	return subject, body
}

// SubmissionReceived builds the message sent to a leader after the team's
// project idea enters the review queue.
func SubmissionReceived(teamName, ideaTitle string) (subject, body string) {
	subject = "Submission received"
	body = fmt.Sprintf(
		"Hi,\n\nWe received the project idea %q for team %q. "+
			"The organizing committee will review it and you will be notified of the outcome.",
		ideaTitle, teamName)
	return subject, body
}

// StatusUpdated builds the message sent to a leader after an admin changes
// the submission status.
func StatusUpdated(teamName, status string) (subject, body string) {
	subject = "Submission status update"
	body = fmt.Sprintf(
		"Hi,\n\nThe status of team %q's submission is now: %s.",
		teamName, status)
	return subject, body
}

// ResultsPublished builds the message sent to leaders of accepted and
// waitlisted teams when results go live.
func ResultsPublished(teamName, status string) (subject, body string) {
	subject = "Hackathon results are out"
	body = fmt.Sprintf(
		"Hi,\n\nResults have been published. Team %q: %s. "+
			"Check the portal for details.",
		teamName, status)
	return subject, body
}
