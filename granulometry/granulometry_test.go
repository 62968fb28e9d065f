package granulometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyCurve(t *testing.T) {
	c := New(0)
	assert.Equal(t, uint8(0), c.LengthToThreshold(5))
	assert.Equal(t, 0, c.ThresholdToLength(200))
	assert.Empty(t, c.Points())
}

func TestAddElidesSameLength(t *testing.T) {
	c := New(0)
	c.Add(10, 20)
	c.Add(10, 30)
	assert.Equal(t, []Point{{Length: 10, Threshold: 30}}, c.Points())
}

func TestAddElidesSameThreshold(t *testing.T) {
	c := New(0)
	c.Add(10, 20)
	c.Add(8, 20)
	assert.Equal(t, []Point{{Length: 10, Threshold: 20}}, c.Points())
}

func TestAddBuildsDescendingLengthCurve(t *testing.T) {
	c := New(0)
	c.Add(20, 10)
	c.Add(10, 20)
	c.Add(5, 40)
	assert.Equal(t, []Point{
		{Length: 20, Threshold: 10},
		{Length: 10, Threshold: 20},
		{Length: 5, Threshold: 40},
	}, c.Points())

	assert.Equal(t, uint8(10), c.LengthToThreshold(20))
	assert.Equal(t, uint8(10), c.LengthToThreshold(15))
	assert.Equal(t, uint8(40), c.LengthToThreshold(5))
	assert.Equal(t, uint8(0), c.LengthToThreshold(21))

	assert.Equal(t, 20, c.ThresholdToLength(10))
	assert.Equal(t, 10, c.ThresholdToLength(25))
	assert.Equal(t, 5, c.ThresholdToLength(255))
}

func TestGrowsPastMinCapacity(t *testing.T) {
	c := New(0)
	for i := 0; i < minCapacity*3; i++ {
		c.Add(minCapacity*3-i, uint8(i))
	}
	assert.Len(t, c.Points(), minCapacity*3)
	assert.Equal(t, uint8(minCapacity*3-1), c.LengthToThreshold(1))
}

func TestMergeDropsDominatedPoints(t *testing.T) {
	a := New(0)
	a.Add(20, 10)
	a.Add(10, 30)

	b := New(0)
	b.Add(25, 5)
	b.Add(10, 40)
	b.Add(5, 50)

	m := Merge(a, b)
	for length := 1; length <= 25; length++ {
		fromA := a.LengthToThreshold(length)
		fromB := b.LengthToThreshold(length)
		want := fromA
		if fromB > want {
			want = fromB
		}
		assert.Equalf(t, want, m.LengthToThreshold(length), "length %d", length)
	}
}

func TestMergeWithEmpty(t *testing.T) {
	a := New(0)
	a.Add(20, 10)
	a.Add(10, 30)
	b := New(0)

	m := Merge(a, b)
	assert.Equal(t, a.Points(), m.Points())
}
