package commands

import (
	"fmt"

	"activityboard/internal/api"
	"activityboard/internal/domain"
)

// Status texts shown when the server gave no usable text
const (
	GenericErrorText     = "An error occurred"
	SignupFailedText     = "Failed to sign up. Please try again."
	UnregisterFailedText = "Failed to unregister. Please try again."
)

// Interpret maps a mutation response onto the message shown to the user
func Interpret(op domain.MutationOp, activity, email string, res api.Result, err error) MutationResultMsg {
	msg := MutationResultMsg{Op: op, Activity: activity, Email: email}

	switch {
	case err != nil:
		msg.Outcome = OutcomeTransportFailed
		msg.Kind = domain.StatusError
		msg.Text = SignupFailedText
		if op == domain.OpUnregister {
			msg.Text = UnregisterFailedText
		}
	case res.OK():
		msg.Outcome = OutcomeSucceeded
		msg.Kind = domain.StatusSuccess
		msg.Text = res.Message
		if msg.Text == "" {
			msg.Text = defaultSuccessText(op, activity, email)
		}
	default:
		msg.Outcome = OutcomeRejected
		msg.Kind = domain.StatusError
		msg.Text = res.Detail
		if msg.Text == "" {
			msg.Text = GenericErrorText
		}
	}
	return msg
}

func defaultSuccessText(op domain.MutationOp, activity, email string) string {
	if op == domain.OpUnregister {
		return fmt.Sprintf("Unregistered %s from %s", email, activity)
	}
	return fmt.Sprintf("Signed up %s for %s", email, activity)
}
