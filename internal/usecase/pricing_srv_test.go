package usecase

import (
	"testing"

	"tourism-booking/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDiscountPercentage(t *testing.T) {
	tests := []struct {
		participants int
		want         float64
	}{
		{1, 0},
		{7, 0},
		{8, 10},
		{14, 10},
		{15, 15},
		{50, 15},
		{100, 15},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GroupDiscountPercentage(tt.participants),
			"participants=%d", tt.participants)
	}
}

func TestBreakdownNoServicesNoDiscount(t *testing.T) {
	engine := NewPricingEngine()

	b, err := engine.Breakdown(100000, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, float64(200000), b.Subtotal)
	assert.Equal(t, float64(0), b.AdditionalServicesCost)
	assert.Equal(t, float64(0), b.DiscountAmount)
	assert.Equal(t, float64(200000), b.TotalPrice)
	assert.Empty(t, b.InvalidServicesIgnored)
}

func TestBreakdownSingleService(t *testing.T) {
	engine := NewPricingEngine()

	b, err := engine.Breakdown(100000, 2, []string{"guide"})
	require.NoError(t, err)

	// guide is 20% of the 200000 subtotal
	assert.Equal(t, float64(40000), b.AdditionalServicesCost)
	assert.Equal(t, float64(240000), b.TotalPrice)
	require.Len(t, b.Services, 1)
	assert.Equal(t, "guide", b.Services[0].Type)
	assert.Equal(t, float64(40000), b.Services[0].Cost)
}

func TestBreakdownGroupDiscount(t *testing.T) {
	engine := NewPricingEngine()

	b, err := engine.Breakdown(100000, 10, nil)
	require.NoError(t, err)

	assert.Equal(t, float64(1000000), b.Subtotal)
	assert.Equal(t, float64(10), b.DiscountPercentage)
	assert.Equal(t, float64(100000), b.DiscountAmount)
	assert.Equal(t, float64(900000), b.TotalPrice)
}

func TestBreakdownLargeGroupWithServices(t *testing.T) {
	engine := NewPricingEngine()

	b, err := engine.Breakdown(100000, 15, []string{"guide", "transport"})
	require.NoError(t, err)

	assert.Equal(t, float64(1500000), b.Subtotal)
	// guide 20% + transport 15% = 35% of subtotal
	assert.Equal(t, float64(525000), b.AdditionalServicesCost)
	assert.Equal(t, float64(2025000), b.TotalBeforeDiscount)
	assert.Equal(t, float64(15), b.DiscountPercentage)
	// Discount applies to the pre-discount total including add-ons.
	assert.Equal(t, float64(303750), b.DiscountAmount)
	assert.Equal(t, float64(1721250), b.TotalPrice)
}

func TestBreakdownInvariant(t *testing.T) {
	engine := NewPricingEngine()

	cases := []struct {
		price        float64
		participants int
		services     []string
	}{
		{50000, 1, nil},
		{75000, 3, []string{"food"}},
		{100000, 8, []string{"guide", "equipment"}},
		{120000, 14, []string{"guide", "transport", "food", "equipment"}},
		{99999, 15, []string{"transport"}},
		{100000, 100, []string{"guide"}},
	}

	for _, tc := range cases {
		b, err := engine.Breakdown(tc.price, tc.participants, tc.services)
		require.NoError(t, err)
		assert.Equal(t, b.Subtotal+b.AdditionalServicesCost-b.DiscountAmount, b.TotalPrice,
			"price=%v participants=%d services=%v", tc.price, tc.participants, tc.services)
	}
}

func TestBreakdownIgnoresUnknownServices(t *testing.T) {
	engine := NewPricingEngine()

	b, err := engine.Breakdown(100000, 2, []string{"guide", "helicopter", "spa"})
	require.NoError(t, err)

	require.Len(t, b.Services, 1)
	assert.Equal(t, "guide", b.Services[0].Type)
	assert.Equal(t, []string{"helicopter", "spa"}, b.InvalidServicesIgnored)
	assert.Equal(t, float64(40000), b.AdditionalServicesCost)
}

func TestBreakdownDeterministic(t *testing.T) {
	engine := NewPricingEngine()

	first, err := engine.Breakdown(123456, 9, []string{"guide", "food"})
	require.NoError(t, err)
	second, err := engine.Breakdown(123456, 9, []string{"guide", "food"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBreakdownInvalidInputs(t *testing.T) {
	engine := NewPricingEngine()

	tests := []struct {
		name         string
		price        float64
		participants int
		wantField    string
	}{
		{"zero price", 0, 2, "price"},
		{"negative price", -100, 2, "price"},
		{"zero participants", 100000, 0, "participants"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Breakdown(tt.price, tt.participants, nil)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Contains(t, apperr.FieldsOf(err), tt.wantField)
		})
	}
}

func TestBreakdownCollectsAllViolations(t *testing.T) {
	engine := NewPricingEngine()

	_, err := engine.Breakdown(0, 0, nil)
	require.Error(t, err)

	fields := apperr.FieldsOf(err)
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "participants")
}
