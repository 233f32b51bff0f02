package notify

import (
	"context"
	"errors"
	"strconv"

	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/pkg/entity"
)

var ErrChannelMismatch = errors.New("contact kind doesn't match notifier channel")

type Message struct {
	Subject string
	Body    string
}

// Notifier delivers a message over one channel. Send is attempted once,
// callers decide what to do with the failure.
type Notifier interface {
	Channel() entity.ContactKind
	Send(ctx context.Context, contact entity.Contact, msg Message) error
}

func ReminderMessage(user *entity.User, missed int) Message {
	days := strconv.Itoa(missed)
	return Message{
		Subject: "Check-in reminder: " + days + " days missed",
		Body: "Hello " + user.Name + ",\n\n" +
			"You haven't checked in for " + days + " days in a row. " +
			"Please check in as soon as you can.\n\n" +
			"-- daily check-in",
	}
}

// ByChannel indexes notifiers by their channel, later ones win.
func ByChannel(notifiers ...Notifier) map[entity.ContactKind]Notifier {
	out := make(map[entity.ContactKind]Notifier, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out[n.Channel()] = n
		}
	}
	return out
}

func checkContact(n Notifier, contact entity.Contact) error {
	if contact.Kind != n.Channel() {
		return ErrChannelMismatch
	}
	if contact.Address == "" {
		return errorvalues.ErrNoAddress
	}
	return nil
}
