package webserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/feedbox/feedbox/internal/webserver"
	"github.com/feedbox/feedbox/internal/webserver/controller/feedback"
	"github.com/feedbox/feedbox/internal/webserver/infrastructure"
	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/google/uuid"
)

func submission(email string, rating int) map[string]interface{} {
	return map[string]interface{}{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      email,
		"mobile":     "600123123",
		"rating":     rating,
		"comment":    "Everything worked as expected",
	}
}

func TestFeedbackWithCaptcha(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	captchaMock := &infrastructure.CaptchaMock{}
	app := bootstrapApp(db, &infrastructure.SMTPMock{}, captchaMock, webserver.Config{
		VerificationMode: feedback.VerificationCaptcha,
	})

	t.Run("A first submission with a valid challenge is stored", func(t *testing.T) {
		payload := submission("jane@example.com", 4)
		payload["captcha_token"] = "challenge-response"

		response := postJSON(app, t, "/api/v1/feedback", payload, nil)
		mustReturnStatus(response, http.StatusOK, t)

		if !captchaMock.CalledVerify() {
			t.Error("Verify was not called on the captcha verifier")
		}

		body := decodeBody(response, t)
		if body["submission_count"].(float64) != 1 {
			t.Errorf("Expected submission_count 1, got %v", body["submission_count"])
		}

		var entry model.Feedback
		if err := db.Where("email = ?", "jane@example.com").First(&entry).Error; err != nil {
			t.Fatalf("No feedback stored: %v", err)
		}
		if entry.Rating != 4 {
			t.Errorf("Expected rating 4, got %d", entry.Rating)
		}
	})

	t.Run("A second submission for the same email overwrites the first one", func(t *testing.T) {
		payload := submission("jane@example.com", 2)
		payload["captcha_token"] = "challenge-response"

		response := postJSON(app, t, "/api/v1/feedback", payload, nil)
		mustReturnStatus(response, http.StatusOK, t)

		body := decodeBody(response, t)
		if body["submission_count"].(float64) != 2 {
			t.Errorf("Expected submission_count 2, got %v", body["submission_count"])
		}

		var entry model.Feedback
		db.Where("email = ?", "jane@example.com").First(&entry)
		if entry.Rating != 2 {
			t.Errorf("Expected the edit to overwrite the rating, got %d", entry.Rating)
		}

		var total int64
		db.Model(&model.Feedback{}).Where("email = ?", "jane@example.com").Count(&total)
		if total != 1 {
			t.Errorf("Expected a single row for the email, got %d", total)
		}
	})

	t.Run("A third submission is rejected and changes nothing", func(t *testing.T) {
		payload := submission("jane@example.com", 5)
		payload["captcha_token"] = "challenge-response"

		response := postJSON(app, t, "/api/v1/feedback", payload, nil)
		mustReturnStatus(response, http.StatusForbidden, t)

		body := decodeBody(response, t)
		if body["message"] != "feedback already edited once" {
			t.Errorf("Wrong message received, got %q", body["message"])
		}

		var entry model.Feedback
		db.Where("email = ?", "jane@example.com").First(&entry)
		if entry.Rating != 2 || entry.SubmissionCount != 2 {
			t.Errorf("Rejected submission mutated the record: rating %d, submission count %d", entry.Rating, entry.SubmissionCount)
		}
	})

	t.Run("A failed challenge is rejected before touching the store", func(t *testing.T) {
		captchaMock.RejectAll = true
		defer captchaMock.Reset()

		payload := submission("nobody@example.com", 3)
		payload["captcha_token"] = "challenge-response"

		response := postJSON(app, t, "/api/v1/feedback", payload, nil)
		mustReturnStatus(response, http.StatusBadRequest, t)

		body := decodeBody(response, t)
		if body["message"] != "invalid captcha" {
			t.Errorf("Wrong message received, got %q", body["message"])
		}

		var total int64
		db.Model(&model.Feedback{}).Where("email = ?", "nobody@example.com").Count(&total)
		if total != 0 {
			t.Error("Rejected submission was stored")
		}
	})

	t.Run("An out of range rating is rejected before verification", func(t *testing.T) {
		payload := submission("nobody@example.com", 6)
		payload["captcha_token"] = "challenge-response"

		response := postJSON(app, t, "/api/v1/feedback", payload, nil)
		mustReturnStatus(response, http.StatusBadRequest, t)

		var total int64
		db.Model(&model.Feedback{}).Where("email = ?", "nobody@example.com").Count(&total)
		if total != 0 {
			t.Error("Invalid submission was stored")
		}
	})
}

func TestFeedbackWithMagicLink(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.SMTPMock{}, &infrastructure.CaptchaMock{}, webserver.Config{})

	t.Run("The whole journey, from requesting a link to submitting feedback", func(t *testing.T) {
		mustReturnStatus(postJSON(app, t, "/api/v1/auth/magic-link/send", map[string]interface{}{
			"email": "walker@example.com",
		}, nil), http.StatusOK, t)

		var link model.MagicLink
		if err := db.Where("email = ?", "walker@example.com").First(&link).Error; err != nil {
			t.Fatalf("No magic link stored: %v", err)
		}

		mustReturnStatus(postJSON(app, t, "/api/v1/auth/magic-link/verify", map[string]interface{}{
			"email": link.Email,
			"token": link.Token,
		}, nil), http.StatusOK, t)

		payload := submission("walker@example.com", 5)
		payload["magic_token"] = link.Token
		mustReturnStatus(postJSON(app, t, "/api/v1/feedback", payload, nil), http.StatusOK, t)

		var stored model.Feedback
		if err := db.Where("email = ?", "walker@example.com").First(&stored).Error; err != nil {
			t.Fatalf("No feedback stored: %v", err)
		}
		if stored.VerificationRef != link.Uuid {
			t.Error("Stored entry does not reference the redeemed link")
		}

		// The link is consumed by the successful write
		db.First(&link, link.ID)
		if !link.Used {
			t.Error("Redeemed link is not marked as used")
		}

		mustReturnStatus(postJSON(app, t, "/api/v1/auth/magic-link/verify", map[string]interface{}{
			"email": link.Email,
			"token": link.Token,
		}, nil), http.StatusBadRequest, t)
	})

	t.Run("A submission with a consumed token is rejected", func(t *testing.T) {
		var link model.MagicLink
		db.Where("email = ?", "walker@example.com").First(&link)

		payload := submission("walker@example.com", 1)
		payload["magic_token"] = link.Token

		response := postJSON(app, t, "/api/v1/feedback", payload, nil)
		mustReturnStatus(response, http.StatusBadRequest, t)

		body := decodeBody(response, t)
		if body["message"] != "invalid or expired magic link" {
			t.Errorf("Wrong message received, got %q", body["message"])
		}
	})

	t.Run("A submission for a different email than the link's is rejected", func(t *testing.T) {
		link := model.MagicLink{
			Uuid:      uuid.NewString(),
			Email:     "owner@example.com",
			Token:     "ownerownerownerownerownerownerownerownerownerownerownerownerown",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}
		db.Create(&link)

		response := postJSON(app, t, "/api/v1/feedback", map[string]interface{}{
			"feedback_data": submission("impostor@example.com", 5),
			"validation": map[string]interface{}{
				"email": "owner@example.com",
				"token": link.Token,
			},
		}, nil)
		mustReturnStatus(response, http.StatusBadRequest, t)

		body := decodeBody(response, t)
		if body["message"] != "email does not match the magic link email" {
			t.Errorf("Wrong message received, got %q", body["message"])
		}

		// The mismatch must not consume the link
		db.First(&link, link.ID)
		if link.Used {
			t.Error("Mismatching submission consumed the link")
		}
	})
}

func TestFeedbackWithoutVerification(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.SMTPMock{}, &infrastructure.CaptchaMock{}, webserver.Config{
		VerificationMode: feedback.VerificationNone,
	})

	response := postJSON(app, t, "/api/v1/feedback", submission("open@example.com", 3), nil)
	mustReturnStatus(response, http.StatusOK, t)

	var total int64
	db.Model(&model.Feedback{}).Count(&total)
	if total != 1 {
		t.Errorf("Expected 1 stored entry, got %d", total)
	}
}
