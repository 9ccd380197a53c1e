package composite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(label string) *Leaf {
	return NewLeaf(WithLabel(label))
}

func TestLeaf_Operator(t *testing.T) {
	l := leaf("a")

	out, err := l.Operator()
	require.NoError(t, err)
	assert.Equal(t, "a", out)
	assert.False(t, l.IsComposite())
	assert.Nil(t, l.Parent())
}

func TestLeaf_DefaultLabel(t *testing.T) {
	l1 := NewLeaf()
	l2 := NewLeaf()

	out1, err := l1.Operator()
	require.NoError(t, err)
	out2, err := l2.Operator()
	require.NoError(t, err)

	assert.NotEmpty(t, out1)
	assert.NotContains(t, out1, "Branch(")
	assert.Regexp(t, `^Leaf\d+$`, out1)
	assert.NotEqual(t, out1, out2)
}

func TestLeaf_EmptyLabelFallsBackToLabeler(t *testing.T) {
	seq := NewSequenceLabeler("n")
	l := NewLeaf(WithLabel(""), WithLabeler(seq))
	assert.Equal(t, "n1", l.Label())
}

func TestLeaf_IsNotContainer(t *testing.T) {
	var c Component = leaf("a")

	_, ok := c.(Container)
	assert.False(t, ok)

	_, ok = AsContainer(c)
	assert.False(t, ok)
}

func TestComposite_Empty(t *testing.T) {
	c := New()

	out, err := c.Operator()
	require.NoError(t, err)
	assert.Equal(t, "Branch()", out)
	assert.True(t, c.IsComposite())
	assert.Equal(t, 0, c.Len())
}

func TestComposite_OrderPreserved(t *testing.T) {
	c := New()
	c.Add(leaf("c1"))
	c.Add(leaf("c2"))
	c.Add(leaf("c3"))

	out, err := c.Operator()
	require.NoError(t, err)
	assert.Equal(t, "Branch(c1+c2+c3)", out)
}

func TestComposite_Duplicates(t *testing.T) {
	c := New()
	a := leaf("a")
	c.Add(a)
	c.Add(a)

	out, err := c.Operator()
	require.NoError(t, err)
	assert.Equal(t, "Branch(a+a)", out)
	assert.Equal(t, 2, c.Len())
}

func TestComposite_Nested(t *testing.T) {
	l1, l2, l3 := leaf("l1"), leaf("l2"), leaf("l3")

	branch1 := New()
	branch1.Add(l1)
	branch1.Add(l2)

	branch2 := New()
	branch2.Add(l3)

	tree := New()
	tree.Add(branch1)
	tree.Add(branch2)

	out, err := tree.Operator()
	require.NoError(t, err)
	assert.Equal(t, "Branch(Branch(l1+l2)+Branch(l3))", out)
}

func TestComposite_NestedDefaultLabels(t *testing.T) {
	l1, l2, l3 := NewLeaf(), NewLeaf(), NewLeaf()

	branch1 := New()
	branch1.Add(l1)
	branch1.Add(l2)
	branch2 := New()
	branch2.Add(l3)
	tree := New()
	tree.Add(branch1)
	tree.Add(branch2)

	out, err := tree.Operator()
	require.NoError(t, err)
	assert.Equal(t, "Branch(Branch("+l1.Label()+"+"+l2.Label()+")+Branch("+l3.Label()+"))", out)
}

func TestComposite_OperatorIdempotent(t *testing.T) {
	tree := New()
	sub := New()
	sub.Add(leaf("x"))
	tree.Add(sub)
	tree.Add(leaf("y"))

	first, err := tree.Operator()
	require.NoError(t, err)
	second, err := tree.Operator()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposite_AddRemoveRestores(t *testing.T) {
	c := New()
	a, b := leaf("a"), leaf("b")
	c.Add(a)
	c.Add(b)
	before := c.Children()

	x := leaf("x")
	x.SetParent(c)
	c.Add(x)
	require.NoError(t, c.Remove(x))

	assert.Equal(t, before, c.Children())
	assert.Nil(t, x.Parent())
}

func TestComposite_RemoveFirstOccurrence(t *testing.T) {
	c := New()
	a, b := leaf("a"), leaf("b")
	c.Add(a)
	c.Add(b)
	c.Add(a)

	require.NoError(t, c.Remove(a))

	assert.Equal(t, []Component{b, a}, c.Children())
}

func TestComposite_RemoveNotFound(t *testing.T) {
	c := New(WithName("root"))
	a := leaf("a")
	c.Add(a)
	before := c.Children()

	stranger := leaf("stranger")
	stranger.SetParent(c)
	err := c.Remove(stranger)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var me *MembershipError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, `branch "root"`, me.Parent)
	assert.Equal(t, "leaf stranger", me.Child)

	assert.Equal(t, before, c.Children())
	assert.Equal(t, c, stranger.Parent(), "failed remove must not touch parent")
}

func TestComposite_RemoveNil(t *testing.T) {
	c := New()
	err := c.Remove(nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComposite_AddNilIgnored(t *testing.T) {
	c := New()
	c.Add(nil)
	assert.Equal(t, 0, c.Len())
}

func TestComposite_AddDoesNotSetParentByDefault(t *testing.T) {
	c := New()
	a := leaf("a")
	c.Add(a)
	assert.Nil(t, a.Parent())
}

func TestComposite_WithParentTracking(t *testing.T) {
	c := New(WithParentTracking())
	a := leaf("a")
	c.Add(a)
	assert.Equal(t, Container(c), a.Parent())

	require.NoError(t, c.Remove(a))
	assert.Nil(t, a.Parent())
}

func TestComposite_ChildrenIsCopy(t *testing.T) {
	c := New()
	c.Add(leaf("a"))

	children := c.Children()
	children[0] = leaf("mutated")

	out, err := c.Operator()
	require.NoError(t, err)
	assert.Equal(t, "Branch(a)", out)
}

func TestComposite_IndexOfContains(t *testing.T) {
	c := New()
	a, b := leaf("a"), leaf("b")
	c.Add(a)

	assert.Equal(t, 0, c.IndexOf(a))
	assert.Equal(t, -1, c.IndexOf(b))
	assert.True(t, c.Contains(a))
	assert.False(t, c.Contains(b))
}

func TestComposite_String(t *testing.T) {
	assert.Equal(t, `branch "tree"`, New(WithName("tree")).String())

	c := New()
	c.Add(leaf("a"))
	assert.Equal(t, "branch(1 children)", c.String())
}

func TestAsContainer(t *testing.T) {
	c := New()
	ct, ok := AsContainer(c)
	require.True(t, ok)
	assert.Equal(t, Container(c), ct)

	_, ok = AsContainer(nil)
	assert.False(t, ok)
}

// stubComponent 报告自身为分支但不实现 Container
type stubComponent struct {
	Base
}

func (s *stubComponent) IsComposite() bool         { return true }
func (s *stubComponent) Operator() (string, error) { return "stub", nil }

func TestAsContainer_CompositeWithoutContainer(t *testing.T) {
	_, ok := AsContainer(&stubComponent{})
	assert.False(t, ok)

	c := New()
	c.Add(&stubComponent{})
	out, err := c.Operator()
	require.NoError(t, err)
	assert.Equal(t, "Branch(stub)", out)
}
