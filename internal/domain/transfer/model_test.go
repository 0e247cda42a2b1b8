package transfer

import (
	"errors"
	"testing"
	"time"
)

func TestTransfer_ConfirmAndCancelOnlyFromPending(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	pending := Transfer{ID: "t1", PlayerID: "p1", ToClubID: "c2", TransferDate: now, Status: StatusPending}

	confirmed, err := pending.Confirm(now)
	if err != nil || confirmed.Status != StatusConfirmed {
		t.Fatalf("Confirm = %+v, %v", confirmed, err)
	}
	if _, err := confirmed.Cancel(now); !errors.Is(err, ErrNotPending) {
		t.Fatalf("cancel after confirm should fail with ErrNotPending, got %v", err)
	}

	cancelled, err := pending.Cancel(now)
	if err != nil || cancelled.Status != StatusCancelled {
		t.Fatalf("Cancel = %+v, %v", cancelled, err)
	}
	if _, err := cancelled.Confirm(now); !errors.Is(err, ErrNotPending) {
		t.Fatalf("confirm after cancel should fail with ErrNotPending, got %v", err)
	}
}

func TestTransfer_Validate(t *testing.T) {
	t.Parallel()

	base := Transfer{ID: "t1", PlayerID: "p1", FromClubID: "c1", ToClubID: "c2", TransferDate: time.Now(), Status: StatusPending}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same := base
	same.ToClubID = "c1"
	if err := same.Validate(); err == nil {
		t.Fatalf("expected error for same source and destination")
	}

	fee := int64(-1)
	negative := base
	negative.FeeCents = &fee
	if err := negative.Validate(); err == nil {
		t.Fatalf("expected error for negative fee")
	}
}
