package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFourOfAKind(t *testing.T) {
	// Four sevens spread across the layers, no jokers involved.
	a := arrangement("7s7h2c", "7d7c3s", "KsKdKc")
	assert.True(t, FourOfAKind(a))
	assert.True(t, HasSpecial(a))

	// Three sevens plus a joker is not four of a kind.
	a = arrangement("7s7h2c", "7dX3s", "KsKdKc")
	assert.False(t, FourOfAKind(a))
}

func TestAllNines(t *testing.T) {
	// Every layer sums to nine with no jokers anywhere.
	a := arrangement("2s3d4c", "4s5dTc", "2h3h4h")
	assert.True(t, AllNines(a))
	assert.True(t, HasSpecial(a))

	// One layer short of nine.
	a = arrangement("2s3d4c", "4s5d9c", "2h3h4h")
	assert.False(t, AllNines(a))
}

func TestAllNinesRejectsJokers(t *testing.T) {
	// The joker layer evaluates to nine under normal scoring, but the
	// bonus demands natural nines.
	a := arrangement("2c6dX", "4s5dTc", "2h3h4h")
	assert.Equal(t, 9, a.Top.Evaluate().Value)
	assert.False(t, AllNines(a))
	assert.False(t, HasSpecial(a))
}

func TestHasSpecialEitherBonus(t *testing.T) {
	// Four of a kind qualifies even when the layers are nowhere near nines.
	quads := arrangement("As2s3d", "AdAc4c", "AhKsKd")
	assert.True(t, FourOfAKind(quads))
	assert.False(t, AllNines(quads))
	assert.True(t, HasSpecial(quads))

	// Nothing special here.
	plain := arrangement("2s3d5c", "2h3h4h", "KsKdKc")
	assert.False(t, HasSpecial(plain))
}
