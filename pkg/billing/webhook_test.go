package billing

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

const secret = "whsec_test"

func TestVerifySignature(t *testing.T) {
	is := is.New(t)

	payload := []byte(`{"type":"checkout.session.completed"}`)
	now := time.Now()
	header := Sign(payload, secret, now)

	is.NoErr(VerifySignature(payload, header, secret, now))
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	is := is.New(t)

	payload := []byte(`{}`)
	now := time.Now()
	header := Sign(payload, "whsec_other", now)

	err := VerifySignature(payload, header, secret, now)
	is.True(errors.Is(err, ErrInvalidSignature))
}

func TestVerifySignatureTamperedPayload(t *testing.T) {
	is := is.New(t)

	now := time.Now()
	header := Sign([]byte(`{"a":1}`), secret, now)

	err := VerifySignature([]byte(`{"a":2}`), header, secret, now)
	is.True(errors.Is(err, ErrInvalidSignature))
}

func TestVerifySignatureStaleTimestamp(t *testing.T) {
	is := is.New(t)

	payload := []byte(`{}`)
	then := time.Now().Add(-10 * time.Minute)
	header := Sign(payload, secret, then)

	err := VerifySignature(payload, header, secret, time.Now())
	is.True(errors.Is(err, ErrStaleTimestamp))
}

func TestVerifySignatureGarbageHeader(t *testing.T) {
	is := is.New(t)

	for _, header := range []string{
		"",
		"t=abc,v1=00",
		"v1=00",
		"t=123",
	} {
		err := VerifySignature([]byte(`{}`), header, secret, time.Now())
		is.True(errors.Is(err, ErrInvalidSignature))
	}
}

func TestParseEvent(t *testing.T) {
	is := is.New(t)

	payload := []byte(`{
		"id": "evt_1",
		"type": "customer.subscription.updated",
		"data": {"object": {"id": "sub_1", "customer": "cus_1", "status": "active"}}
	}`)
	now := time.Now()

	e, err := ParseEvent(payload, Sign(payload, secret, now), secret, now)
	is.NoErr(err)
	is.Equal(e.Type, EventSubscriptionUpdated)

	var sub Subscription
	is.NoErr(json.Unmarshal(e.Data.Object, &sub))
	is.Equal(sub.Customer, "cus_1")
	is.Equal(sub.Status, "active")
}
