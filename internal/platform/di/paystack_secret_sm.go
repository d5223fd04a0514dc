package di

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Default Secret Manager secret name for the Paystack API key.
const paystackSecretID = "paystack-secret-key"

// resolvePaystackSecret reads the gateway secret from Secret Manager. It is
// only consulted when PAYSTACK_SECRET_KEY is not set in the environment.
func resolvePaystackSecret(ctx context.Context, sm *secretmanager.Client, projectID string) (string, error) {
	if sm == nil {
		return "", errors.New("di: secret manager client is nil")
	}
	prj := strings.TrimSpace(projectID)
	if prj == "" {
		return "", errors.New("di: projectID is empty")
	}

	name := "projects/" + prj + "/secrets/" + paystackSecretID + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("di: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("di: empty secret payload (" + name + ")")
	}

	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
