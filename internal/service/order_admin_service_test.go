package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAdminUpdateRejectsEmptyRequest(t *testing.T) {
	svc := &OrderAdminService{}

	_, err := svc.Update(context.Background(), "some-id", &UpdateOrderRequest{})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "status")
}

func TestOrderAdminUpdateRejectsUnknownStatus(t *testing.T) {
	svc := &OrderAdminService{}

	_, err := svc.Update(context.Background(), "some-id", &UpdateOrderRequest{
		Status: strPtr("shipped"),
	})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "status")
}
