package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		stock      int
		wantReason string
	}{
		{name: "one unit in stock", requested: 1, stock: 5},
		{name: "exactly the stock", requested: 5, stock: 5},
		{name: "stock unknown allows any positive", requested: 999, stock: StockUnknown},
		{name: "zero", requested: 0, stock: 5, wantReason: ReasonBelowMinimum},
		{name: "negative", requested: -3, stock: 5, wantReason: ReasonBelowMinimum},
		{name: "over stock", requested: 6, stock: 5, wantReason: ReasonExceedsStock},
		{name: "zero stock rejects one", requested: 1, stock: 0, wantReason: ReasonExceedsStock},
		{name: "below minimum wins over stock", requested: 0, stock: 0, wantReason: ReasonBelowMinimum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateQuantity(tt.requested, tt.stock)

			if tt.wantReason != "" {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantReason, ve.Reason)
				assert.Equal(t, KindValidation, Classify(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.requested, got, "no clamping")
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, KindNone, Classify(nil))
	})

	t.Run("server error", func(t *testing.T) {
		err := &ServerError{StatusCode: 500, Message: "boom"}
		assert.Equal(t, KindServer, Classify(err))
	})

	t.Run("sentinels", func(t *testing.T) {
		assert.Equal(t, KindAuth, Classify(ErrAuth))
		assert.Equal(t, KindNotFound, Classify(ErrNotFound))
		assert.Equal(t, KindCancelled, Classify(ErrCancelled))
	})

	t.Run("unknown errors are network", func(t *testing.T) {
		assert.Equal(t, KindNetwork, Classify(assert.AnError))
	})
}
