package domain

import (
	"errors"
	"testing"
)

func TestViewState_Open(t *testing.T) {
	staffID := int64(1)
	clientID := int64(2)

	v := ClosedView()
	v, err := v.Open(ViewState{Kind: ViewEditingStaff, StaffID: &staffID})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if v.Kind != ViewEditingStaff || *v.StaffID != staffID {
		t.Fatalf("unexpected state %+v", v)
	}

	same, err := v.Open(ViewState{Kind: ViewViewingHistory, ClientID: &clientID})
	if !errors.Is(err, ErrViewAlreadyOpen) {
		t.Fatalf("expected ErrViewAlreadyOpen, got %v", err)
	}
	if same.Kind != ViewEditingStaff {
		t.Fatal("state must not change when opening fails")
	}

	closed, err := v.Open(ClosedView())
	if err != nil || closed.IsOpen() {
		t.Fatalf("opening the closed view should close, got %+v, %v", closed, err)
	}
}

func TestViewState_Validate(t *testing.T) {
	staffID := int64(1)
	tests := []struct {
		name string
		v    ViewState
		ok   bool
	}{
		{"adding appointment", ViewState{Kind: ViewAddingAppointment}, true},
		{"configuring grid", ViewState{Kind: ViewConfiguringGrid}, true},
		{"editing schedule with staff", ViewState{Kind: ViewEditingSchedule, StaffID: &staffID}, true},
		{"editing staff without id", ViewState{Kind: ViewEditingStaff}, false},
		{"history with staff id", ViewState{Kind: ViewViewingHistory, StaffID: &staffID}, false},
		{"adding appointment with staff id", ViewState{Kind: ViewAddingAppointment, StaffID: &staffID}, false},
		{"unknown kind", ViewState{Kind: "wizard"}, false},
	}
	for _, tt := range tests {
		err := tt.v.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: expected ok=%v, got %v", tt.name, tt.ok, err)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "startTime", Message: "bad"},
		{Field: "endTime", Message: "worse"},
	}
	if got := errs.Error(); got != "startTime: bad; endTime: worse" {
		t.Fatalf("unexpected message %q", got)
	}
}
