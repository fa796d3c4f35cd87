package config

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// BootFCM initializes the Firebase Admin SDK messaging client used for the
// donor push fan-out.
func BootFCM(ctx context.Context) (*messaging.Client, error) {
	if fcmClient != nil {
		return fcmClient, nil
	}

	credFile, err := getFirebaseCredentialsFile()
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(*credFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase messaging: %w", err)
	}

	fcmClient = client
	return fcmClient, nil
}

func getFirebaseCredentialsFile() (*string, error) {
	cred := os.Getenv("FIREBASE_CREDENTIALS_FILE")
	if cred == "" {
		return nil, fmt.Errorf("firebase credentials file invalid, value : %s", cred)
	}
	return &cred, nil
}
