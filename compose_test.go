// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose2(t *testing.T) {
	t.Run("both stages run in order", func(t *testing.T) {
		enrich := FuncAdapter[string, string](func(ctx context.Context, body string) (string, error) {
			return body + ":enriched", nil
		})
		size := FuncAdapter[string, int](func(ctx context.Context, body string) (int, error) {
			return len(body), nil
		})

		route := Compose2[string, string, int](enrich, size)
		result, err := route.Call(context.Background(), "order")

		require.NoError(t, err)
		assert.Equal(t, len("order:enriched"), result)
	})

	t.Run("first stage fails", func(t *testing.T) {
		wantErr := errors.New("validation failed")
		validate := FuncAdapter[string, string](func(ctx context.Context, body string) (string, error) {
			return "", wantErr
		})
		deliver := FuncAdapter[string, int](func(ctx context.Context, body string) (int, error) {
			t.Fatal("deliver should not be called")
			return 0, nil
		})

		route := Compose2[string, string, int](validate, deliver)
		_, err := route.Call(context.Background(), "order")

		require.ErrorIs(t, err, wantErr)
	})

	t.Run("second stage fails", func(t *testing.T) {
		wantErr := errors.New("delivery failed")
		validate := FuncAdapter[string, string](func(ctx context.Context, body string) (string, error) {
			return body, nil
		})
		deliver := FuncAdapter[string, int](func(ctx context.Context, body string) (int, error) {
			return 0, wantErr
		})

		route := Compose2[string, string, int](validate, deliver)
		_, err := route.Call(context.Background(), "order")

		require.ErrorIs(t, err, wantErr)
	})
}

func TestCompose3(t *testing.T) {
	trim := FuncAdapter[string, string](func(ctx context.Context, body string) (string, error) {
		return strings.TrimSpace(body), nil
	})
	upper := FuncAdapter[string, string](func(ctx context.Context, body string) (string, error) {
		return strings.ToUpper(body), nil
	})
	size := FuncAdapter[string, int](func(ctx context.Context, body string) (int, error) {
		return len(body), nil
	})

	route := Compose3[string, string, string, int](trim, upper, size)
	result, err := route.Call(context.Background(), "  abc  ")

	require.NoError(t, err)
	assert.Equal(t, 3, result)
}
