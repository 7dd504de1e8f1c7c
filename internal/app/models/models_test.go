package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettlesBill(t *testing.T) {
	assert.True(t, SettlesBill("Society Fee"))
	assert.True(t, SettlesBill("Utility Bill"))
	assert.False(t, SettlesBill("Festival Donation"))
	assert.False(t, SettlesBill("society fee"), "matching is exact")
	assert.False(t, SettlesBill(""))
}

func TestStatusValidators(t *testing.T) {
	assert.True(t, IsValidBillStatus(BillPending))
	assert.True(t, IsValidBillStatus(BillPaid))
	assert.False(t, IsValidBillStatus("Overdue"))

	assert.True(t, IsValidPaymentStatus(PaymentPending))
	assert.True(t, IsValidPaymentStatus(PaymentPaid))
	assert.False(t, IsValidPaymentStatus("Refunded"))

	assert.True(t, IsValidRequestStatus(RequestPending))
	assert.True(t, IsValidRequestStatus(RequestInProgress))
	assert.True(t, IsValidRequestStatus(RequestCompleted))
	assert.False(t, IsValidRequestStatus("Closed"))

	assert.True(t, IsValidPropertyType(PropertyApartment))
	assert.True(t, IsValidPropertyType(PropertyHouse))
	assert.True(t, IsValidPropertyType(PropertyVilla))
	assert.False(t, IsValidPropertyType("Castle"))
}

func TestIdentityIsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: RoleResident}.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}
