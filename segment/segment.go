package segment

import (
	"log/slog"
	"os"

	"github.com/segmentio/analytics-go/v3"
)

var client analytics.Client = nil

func getClient() analytics.Client {
	segmentApiKey := os.Getenv("SEGMENT_API_KEY")
	if segmentApiKey == "" {
		slog.Debug("Not initializing segment because SEGMENT_API_KEY is missing")
		return nil
	}
	if client == nil {
		client = analytics.New(segmentApiKey)
	}
	return client
}

func CloseClient() {
	if client == nil {
		return
	}
	client.Close()
}

func IdentifyUser(email string, fullName string, role string) {
	getClient()
	if client == nil {
		return
	}
	slog.Debug("Identifying user", "email", email)
	client.Enqueue(analytics.Identify{
		UserId: email,
		Traits: analytics.NewTraits().
			SetName(fullName).
			SetEmail(email).
			Set("role", role),
	})
}

func Track(userEmail string, action string, extraProps map[string]string) {
	getClient()
	if client == nil {
		return
	}

	props := analytics.NewProperties()
	for k, v := range extraProps {
		props.Set(k, v)
	}

	slog.Debug("Tracking user action", "email", userEmail, "action", action)
	client.Enqueue(analytics.Track{
		Event:      action,
		UserId:     userEmail,
		Properties: props,
	})
}
