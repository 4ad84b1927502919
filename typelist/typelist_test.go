package typelist

import (
	"reflect"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

type (
	alpha struct{}
	beta  struct{}
	gamma struct{}
	delta interface{ Delta() }
)

var (
	a = TypeOf[alpha]()
	b = TypeOf[beta]()
	g = TypeOf[gamma]()
	d = TypeOf[delta]()
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, reflect.Interface, d.Kind())
	assert.Equal(t, reflect.Struct, a.Kind())
	assert.Equal(t, "alpha", a.Name())
}

func TestTypeList(t *testing.T) {
	Convey("Given the list <alpha, beta, gamma>", t, func() {
		l := New(a, b, g)

		Convey("Append adds at the end and leaves the receiver alone", func() {
			appended := l.Append(d)
			So(appended.Len(), ShouldEqual, 4)
			So(appended.Get(3), ShouldEqual, d)
			So(l.Len(), ShouldEqual, 3)
		})

		Convey("Prepend adds at the front", func() {
			prepended := l.Prepend(d)
			So(prepended.Head(), ShouldEqual, d)
			So(prepended.Tail().Equal(l), ShouldBeTrue)
		})

		Convey("Reverse flips the order", func() {
			reversed := l.Reverse()
			So(reversed.Equal(New(g, b, a)), ShouldBeTrue)
			So(reversed.Reverse().Equal(l), ShouldBeTrue)
			So(l.Equal(New(a, b, g)), ShouldBeTrue)
		})

		Convey("Remove drops the first occurrence and keeps order", func() {
			So(l.Remove(b).Equal(New(a, g)), ShouldBeTrue)
			So(New(a, b, a).Remove(a).Equal(New(b, a)), ShouldBeTrue)
		})

		Convey("Remove of an absent type is a no-op", func() {
			So(l.Remove(d).Equal(l), ShouldBeTrue)
		})

		Convey("Contains uses type identity", func() {
			So(l.Contains(a), ShouldBeTrue)
			So(l.Contains(d), ShouldBeFalse)
			So(l.Contains(reflect.PointerTo(a)), ShouldBeFalse)
		})

		Convey("Get returns by index and panics out of range", func() {
			So(l.Get(0), ShouldEqual, a)
			So(l.Get(2), ShouldEqual, g)
			So(func() { l.Get(3) }, ShouldPanic)
		})

		Convey("Replace substitutes the first occurrence only", func() {
			So(l.Replace(b, d).Equal(New(a, d, g)), ShouldBeTrue)
			So(New(b, b).Replace(b, a).Equal(New(a, b)), ShouldBeTrue)
			So(l.Replace(d, a).Equal(l), ShouldBeTrue)
		})

		Convey("Index reports the position", func() {
			So(l.Index(g), ShouldEqual, 2)
			So(l.Index(d), ShouldEqual, -1)
		})
	})
}

func TestTypeList_Immutable(t *testing.T) {
	types := []reflect.Type{a, b}
	l := New(types...)
	types[0] = g
	assert.Equal(t, a, l.Get(0))

	out := l.Types()
	out[1] = g
	assert.Equal(t, b, l.Get(1))
}

func TestTypeList_Empty(t *testing.T) {
	var l TypeList
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.Head())
	assert.True(t, l.Tail().IsEmpty())
	assert.True(t, l.Reverse().IsEmpty())
	assert.True(t, l.Equal(Empty))
	assert.Equal(t, "TypeList<>", l.String())
}

func TestNew_NilType(t *testing.T) {
	assert.Panics(t, func() { New(a, nil) })
}

func TestWith(t *testing.T) {
	l := With[gamma](With[alpha](Empty))
	assert.True(t, l.Equal(New(a, g)))
}

func TestAnyFilter(t *testing.T) {
	l := New(a, d, b)
	isInterface := func(t reflect.Type) bool { return t.Kind() == reflect.Interface }
	assert.True(t, l.Any(isInterface))
	assert.False(t, New(a, b).Any(isInterface))
	assert.True(t, l.Filter(isInterface).Equal(New(d)))
	assert.True(t, l.Filter(func(reflect.Type) bool { return false }).IsEmpty())
}

func TestKeyString(t *testing.T) {
	l := New(a, b)
	assert.Equal(t, New(a, b).Key(), l.Key())
	assert.NotEqual(t, New(b, a).Key(), l.Key())
	assert.Equal(t, New(a).Key()+","+New(b).Key(), l.Key())
	assert.Equal(t, "TypeList<typelist.alpha, typelist.beta>", l.String())
	assert.Equal(t, "[]int", Name(reflect.TypeOf([]int{})))
}

func localFirst() reflect.Type {
	type local struct{ x int }
	return TypeOf[local]()
}

func localSecond() reflect.Type {
	type local struct{ y string }
	return TypeOf[local]()
}

func TestKey_SameName(t *testing.T) {
	first, second := localFirst(), localSecond()
	assert.NotEqual(t, first, second)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, Name(first), Name(second))
	assert.NotEqual(t, New(first).Key(), New(second).Key())
	assert.Equal(t, New(first).Key(), New(localFirst()).Key())

	unnamedFirst := reflect.TypeOf(struct{ A alpha }{})
	unnamedSecond := reflect.TypeOf(struct{ A beta }{})
	assert.NotEqual(t, New(unnamedFirst).Key(), New(unnamedSecond).Key())
}

func TestSplit(t *testing.T) {
	Convey("Split partitions <alpha, delta, beta> by kind", t, func() {
		isInterface := func(t reflect.Type) bool { return t.Kind() == reflect.Interface }
		accepted, rejected := New(a, d, b).Split(isInterface)
		So(accepted.Equal(New(d)), ShouldBeTrue)
		So(rejected.Equal(New(a, b)), ShouldBeTrue)

		accepted, rejected = Empty.Split(isInterface)
		So(accepted.IsEmpty(), ShouldBeTrue)
		So(rejected.IsEmpty(), ShouldBeTrue)
	})
}
