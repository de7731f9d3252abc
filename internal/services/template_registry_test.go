package services

import (
	"errors"
	"strings"
	"testing"

	"food-order-bot/internal/models"
)

func TestResolveTemplateKnownStatuses(t *testing.T) {
	statuses := []models.OrderStatus{
		models.StatusConfirmed,
		models.StatusReady,
		models.StatusDelivering,
		models.StatusDelivered,
	}

	for _, status := range statuses {
		text, err := ResolveTemplate(status, "")
		if err != nil {
			t.Errorf("ResolveTemplate(%s) returned error: %v", status, err)
			continue
		}
		if text == "" {
			t.Errorf("ResolveTemplate(%s) returned empty template", status)
		}
		if !strings.Contains(text, "{order_id}") {
			t.Errorf("template for %s has no {order_id} placeholder", status)
		}
	}
}

func TestResolveTemplateUnknownStatus(t *testing.T) {
	_, err := ResolveTemplate("shipped", models.TypeDelivery)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("ResolveTemplate(shipped) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestResolveTemplateChannelVariants(t *testing.T) {
	for _, status := range []models.OrderStatus{models.StatusReady, models.StatusDelivered} {
		delivery, err := ResolveTemplate(status, models.TypeDelivery)
		if err != nil {
			t.Fatalf("ResolveTemplate(%s, delivery): %v", status, err)
		}
		takeaway, err := ResolveTemplate(status, models.TypeTakeaway)
		if err != nil {
			t.Fatalf("ResolveTemplate(%s, takeaway): %v", status, err)
		}
		if delivery == takeaway {
			t.Errorf("%s: takeaway template must differ from delivery template", status)
		}
	}
}

func TestResolveTemplateChannelFallback(t *testing.T) {
	// Незнакомый канал откатывается на delivery.
	for _, status := range []models.OrderStatus{models.StatusReady, models.StatusDelivered} {
		delivery, _ := ResolveTemplate(status, models.TypeDelivery)

		unknown, err := ResolveTemplate(status, "dine-in")
		if err != nil {
			t.Fatalf("ResolveTemplate(%s, dine-in): %v", status, err)
		}
		if unknown != delivery {
			t.Errorf("%s: unknown channel must fall back to delivery template", status)
		}

		empty, err := ResolveTemplate(status, "")
		if err != nil {
			t.Fatalf("ResolveTemplate(%s, empty): %v", status, err)
		}
		if empty != delivery {
			t.Errorf("%s: empty channel must fall back to delivery template", status)
		}
	}
}

func TestKnownNotificationStatus(t *testing.T) {
	if !KnownNotificationStatus(models.StatusConfirmed) {
		t.Error("confirmed must be a known notification status")
	}
	if KnownNotificationStatus(models.StatusCancelled) {
		t.Error("cancelled is history-only, not a notification status")
	}
}
