package fcm

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/abdul-nishar/Entertainment-API/utils/events"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// NewReleasesTopic is the FCM topic mobile clients subscribe to for catalog
// announcements.
const NewReleasesTopic = "new_releases"

var fcmClient *messaging.Client

// Init sets up the Firebase Admin SDK. Credentials come from
// GOOGLE_APPLICATION_CREDENTIALS; without a project id push notifications
// are disabled and the notifier becomes a no-op.
func Init() {
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Println("FIREBASE_PROJECT_ID not set, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		log.Fatalf("error initializing Firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("error getting Firebase Messaging client: %v", err)
	}

	fcmClient = client
	log.Println("✅ Firebase Admin SDK initialized successfully.")
}

// SendNotificationToTopic pushes one notification to a topic.
func SendNotificationToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if fcmClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: &messaging.AndroidNotification{ChannelID: "default_channel"},
		},
	}

	_, err := fcmClient.Send(ctx, msg)
	return err
}

// StartNotifierConsumer drains the catalog event bus and fans new-release
// announcements out to subscribed devices. Runs until ctx is cancelled.
func StartNotifierConsumer(ctx context.Context) {
	log.Println("✅ Catalog notifier consumer started")

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events.CatalogEventBus:
			go func(event events.CatalogEvent) {
				sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				data := map[string]string{
					"entertainment_id": strconv.FormatUint(uint64(event.Entertainment.ID), 10),
					"type":             string(event.Entertainment.Type),
				}

				switch event.Type {
				case events.EntertainmentCreated:
					title := "New in the catalog"
					body := fmt.Sprintf("%s (%s) was just added.", event.Entertainment.Name, event.Entertainment.Type)
					if err := SendNotificationToTopic(sendCtx, NewReleasesTopic, title, body, data); err != nil {
						log.Printf("failed to push catalog notification: %v", err)
					}
				}
			}(e)
		}
	}
}
