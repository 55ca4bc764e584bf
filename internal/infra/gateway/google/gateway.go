// Package google reads a user's mailbox and calendar through the official
// Google API clients.
package google

import (
	"context"
	"encoding/base64"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	"pulse/internal/errors"

	"golang.org/x/oauth2"
	gcalendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

type gateway struct{}

// NewGateway creates the Google data gateway.
func NewGateway() service.ProviderGateway {
	return &gateway{}
}

func (g *gateway) Provider() entity.ExternalProvider {
	return entity.ExternalProviderGoogle
}

// FetchMail retrieves the most recent Gmail messages, newest first.
func (g *gateway) FetchMail(ctx context.Context, accessToken string, limit int) ([]*entity.Email, error) {
	svc, err := gmail.NewService(ctx, option.WithTokenSource(staticSource(accessToken)))
	if err != nil {
		return nil, errors.Wrap(err, "create gmail client")
	}

	list, err := svc.Users.Messages.List("me").MaxResults(int64(limit)).Do()
	if err != nil {
		return nil, errors.Wrap(err, "list gmail messages")
	}

	emails := make([]*entity.Email, 0, len(list.Messages))
	for _, ref := range list.Messages {
		msg, err := svc.Users.Messages.Get("me", ref.Id).Format("full").Do()
		if err != nil {
			return nil, errors.Wrapf(err, "get gmail message %s", ref.Id)
		}

		emails = append(emails, mapMessage(msg))
	}

	return emails, nil
}

// FetchEvents retrieves primary-calendar events starting within [from, to).
func (g *gateway) FetchEvents(ctx context.Context, accessToken string, from, to time.Time) ([]*entity.CalendarEvent, error) {
	svc, err := gcalendar.NewService(ctx, option.WithTokenSource(staticSource(accessToken)))
	if err != nil {
		return nil, errors.Wrap(err, "create calendar client")
	}

	list, err := svc.Events.List("primary").
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "list calendar events")
	}

	events := make([]*entity.CalendarEvent, 0, len(list.Items))
	for _, item := range list.Items {
		event, err := mapEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func staticSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
}

func mapMessage(msg *gmail.Message) *entity.Email {
	email := &entity.Email{
		Service:    entity.ServiceGmail,
		ExternalID: msg.Id,
		Snippet:    msg.Snippet,
		ReceivedAt: time.UnixMilli(msg.InternalDate).UTC(),
	}

	for _, label := range msg.LabelIds {
		if label == "UNREAD" {
			email.Unread = true

			break
		}
	}

	if msg.Payload == nil {
		return email
	}

	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "From":
			email.From = header.Value
		case "Subject":
			email.Subject = header.Value
		}
	}

	email.Body = extractBody(msg.Payload)

	return email
}

// extractBody walks the MIME tree for the first text/plain part, falling
// back to the top-level body.
func extractBody(part *gmail.MessagePart) string {
	if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
		if decoded, err := base64.URLEncoding.DecodeString(part.Body.Data); err == nil {
			return string(decoded)
		}
	}

	for _, child := range part.Parts {
		if body := extractBody(child); body != "" {
			return body
		}
	}

	if part.Body != nil && part.Body.Data != "" {
		if decoded, err := base64.URLEncoding.DecodeString(part.Body.Data); err == nil {
			return string(decoded)
		}
	}

	return ""
}

func mapEvent(item *gcalendar.Event) (*entity.CalendarEvent, error) {
	start, err := parseEventTime(item.Start)
	if err != nil {
		return nil, errors.Wrapf(err, "parse start of event %s", item.Id)
	}
	end, err := parseEventTime(item.End)
	if err != nil {
		return nil, errors.Wrapf(err, "parse end of event %s", item.Id)
	}

	return &entity.CalendarEvent{
		Service:    entity.ServiceGoogleCalendar,
		ExternalID: item.Id,
		Title:      item.Summary,
		Location:   item.Location,
		StartsAt:   start,
		EndsAt:     end,
	}, nil
}

func parseEventTime(edt *gcalendar.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, errors.New("missing event time")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}

	// All-day events carry a date only.
	return time.Parse("2006-01-02", edt.Date)
}
