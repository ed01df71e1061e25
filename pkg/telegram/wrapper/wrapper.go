package wrapper

import (
	"gopkg.in/telebot.v4"
)

// Sender is the part of [telebot.Bot] used to push messages outside of a handler.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// using [telebot.Bot.extractOptions]
type options interface {
	*telebot.SendOptions | *telebot.ReplyMarkup | *telebot.ReplyParams | *telebot.Topic | telebot.Option | telebot.ParseMode | telebot.Entities
}

type sendable interface {
	*telebot.Photo | *telebot.Document | *telebot.Location | string
}

func Send[s sendable, o options](b Sender, to telebot.Recipient, what s, opts ...o) (*telebot.Message, error) {
	anyOpts := make([]any, len(opts))
	for i, opt := range opts {
		anyOpts[i] = opt
	}
	return b.Send(to, what, anyOpts...)
}
