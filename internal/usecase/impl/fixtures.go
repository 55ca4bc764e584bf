package impl

import (
	"fmt"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Fixture data backing simulated connections. The external IDs are stable so
// repeated syncs upsert instead of duplicating.

type mailFixture struct {
	from        string
	subject     string
	snippet     string
	body        string
	receivedAgo time.Duration
	unread      bool
}

var mailFixtures = []mailFixture{
	{
		from:        "Maya Chen <maya.chen@example.com>",
		subject:     "Q3 planning doc ready for review",
		snippet:     "Hi! The Q3 planning document is ready for your review before Thursday's sync...",
		body:        "Hi!\n\nThe Q3 planning document is ready for your review before Thursday's sync. The headcount section still has open questions, so please leave comments inline.\n\nThanks,\nMaya",
		receivedAgo: 2 * time.Hour,
		unread:      true,
	},
	{
		from:        "Billing <billing@cloudhost.example.com>",
		subject:     "Your July invoice is available",
		snippet:     "Your invoice for July is now available in the billing portal...",
		body:        "Your invoice for July is now available in the billing portal. The total for this period is $42.17.\n\nNo action is required; your card on file will be charged automatically.",
		receivedAgo: 5 * time.Hour,
		unread:      true,
	},
	{
		from:        "Daniel Okafor <d.okafor@example.com>",
		subject:     "Re: lunch next week?",
		snippet:     "Tuesday works great for me. How about that ramen place near the office...",
		body:        "Tuesday works great for me. How about that ramen place near the office? I can book a table for 12:30.\n\nDaniel",
		receivedAgo: 26 * time.Hour,
		unread:      false,
	},
}

type eventFixture struct {
	title     string
	location  string
	startHour int // hour of the fixture day, local time
	duration  time.Duration
	dayOffset int // days after the sync day
}

var eventFixtures = []eventFixture{
	{title: "Team standup", location: "Meet", startHour: 9, duration: 30 * time.Minute},
	{title: "Design review", location: "Room 4B", startHour: 11, duration: time.Hour},
	{title: "1:1 with manager", location: "", startHour: 15, duration: 30 * time.Minute},
	{title: "Sprint planning", location: "Room 2A", startHour: 10, duration: 90 * time.Minute, dayOffset: 1},
	{title: "Dentist", location: "Market St clinic", startHour: 16, duration: time.Hour, dayOffset: 2},
}

// simulatedMail renders the mailbox fixtures for one simulated mail service.
func simulatedMail(userID uuid.UUID, service entity.ServiceType, now time.Time) []*entity.Email {
	emails := make([]*entity.Email, 0, len(mailFixtures))
	for i, fixture := range mailFixtures {
		emails = append(emails, &entity.Email{
			UserID:     userID,
			Service:    service,
			ExternalID: fmt.Sprintf("sim-mail-%d", i+1),
			From:       fixture.from,
			Subject:    fixture.subject,
			Snippet:    fixture.snippet,
			Body:       fixture.body,
			ReceivedAt: now.Add(-fixture.receivedAgo),
			Unread:     fixture.unread,
		})
	}

	return emails
}

// simulatedEvents renders the calendar fixtures for one simulated calendar
// service, anchored on the sync day.
func simulatedEvents(userID uuid.UUID, service entity.ServiceType, now time.Time) []*entity.CalendarEvent {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	events := make([]*entity.CalendarEvent, 0, len(eventFixtures))
	for i, fixture := range eventFixtures {
		start := dayStart.AddDate(0, 0, fixture.dayOffset).Add(time.Duration(fixture.startHour) * time.Hour)
		events = append(events, &entity.CalendarEvent{
			UserID:     userID,
			Service:    service,
			ExternalID: fmt.Sprintf("sim-event-%d", i+1),
			Title:      fixture.title,
			Location:   fixture.location,
			StartsAt:   start,
			EndsAt:     start.Add(fixture.duration),
		})
	}

	return events
}
