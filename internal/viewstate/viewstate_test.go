package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	assert.Equal(t, TabHome, s.ActiveTab())
	assert.Equal(t, 0, s.Counter())
	assert.Empty(t, s.Input())
	assert.Empty(t, s.Todos())
	assert.Empty(t, s.PendingTodo())
}

func TestSelectTab_LastValueWins(t *testing.T) {
	sequences := [][]Tab{
		{TabProfile},
		{TabSettings, TabHome},
		{TabProfile, TabProfile},
		{TabSettings, TabProfile, TabHome, TabSettings},
	}
	for _, seq := range sequences {
		s := New()
		for _, tab := range seq {
			s.SelectTab(tab)
			require.True(t, s.ActiveTab().Valid())
		}
		assert.Equal(t, seq[len(seq)-1], s.ActiveTab(), "sequence %v", seq)
	}
}

func TestSelectTab_InvalidPanics(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.SelectTab(Tab(7)) })
	assert.Panics(t, func() { s.SelectTab(Tab(-1)) })
	assert.Equal(t, TabHome, s.ActiveTab())
}

func TestSelectTab_PreservesOtherState(t *testing.T) {
	s := New()
	s.Increment()
	s.Increment()
	s.SetText("hello")

	s.SelectTab(TabSettings)
	s.SelectTab(TabHome)

	assert.Equal(t, 2, s.Counter())
	assert.Equal(t, "hello", s.Input())
}

func TestIncrement_N(t *testing.T) {
	for _, n := range []int{0, 1, 5, 250} {
		s := New()
		for i := 0; i < n; i++ {
			s.Increment()
		}
		assert.Equal(t, n, s.Counter())
	}
}

func TestSetTextAndClear(t *testing.T) {
	s := New()
	s.SetText("a")
	s.SetText("ab")
	assert.Equal(t, "ab", s.Input())
	s.SetText("")
	assert.Equal(t, "", s.Input())
	s.SetText("  x ")
	s.Clear()
	assert.Equal(t, "", s.Input())
}

func TestAdd_BlankIsNoOp(t *testing.T) {
	s := New()
	s.SetPendingTodo("   ")
	assert.False(t, s.Add(""))
	assert.False(t, s.Add("   "))
	assert.False(t, s.AddTodo())
	assert.Empty(t, s.Todos())
	assert.Equal(t, "   ", s.PendingTodo(), "blank submit keeps pending input")
}

func TestAddTodo_AppendsAndClearsPending(t *testing.T) {
	s := New()
	s.SetPendingTodo("buy milk")
	require.True(t, s.AddTodo())
	assert.Equal(t, []string{"buy milk"}, s.Todos())
	assert.Empty(t, s.PendingTodo())
}

func TestAdd_KeepsUntrimmedText(t *testing.T) {
	s := New()
	require.True(t, s.Add("  padded  "))
	assert.Equal(t, []string{"  padded  "}, s.Todos())
}

func TestAdd_DuplicatesAllowed(t *testing.T) {
	s := New()
	s.Add("x")
	s.Add("x")
	assert.Equal(t, []string{"x", "x"}, s.Todos())
	require.True(t, s.RemoveTodoAt(1))
	assert.Equal(t, []string{"x"}, s.Todos())
}

func TestRemoveTodoAt(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("b")
	require.True(t, s.RemoveTodoAt(0))
	assert.Equal(t, []string{"b"}, s.Todos())
}

func TestRemoveTodoAt_OutOfRangeIsNoOp(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("b")
	assert.False(t, s.RemoveTodoAt(5))
	assert.False(t, s.RemoveTodoAt(2))
	assert.False(t, s.RemoveTodoAt(-1))
	assert.Equal(t, []string{"a", "b"}, s.Todos())
}

func TestTodoCount_AppendsMinusRemovals(t *testing.T) {
	s := New()
	added, removed := 0, 0
	ops := []struct {
		add  string
		del  int
		isAd bool
	}{
		{add: "a", isAd: true},
		{add: " ", isAd: true},
		{add: "b", isAd: true},
		{del: 9},
		{del: 0},
		{add: "c", isAd: true},
		{del: 1},
		{del: 1},
	}
	for _, op := range ops {
		if op.isAd {
			if s.Add(op.add) {
				added++
			}
			continue
		}
		if s.RemoveTodoAt(op.del) {
			removed++
		}
	}
	assert.Equal(t, added-removed, s.TodoCount())
	assert.Equal(t, []string{"b"}, s.Todos())
}

func TestTodos_ReturnsCopy(t *testing.T) {
	s := New()
	s.Add("a")
	got := s.Todos()
	got[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.Todos())
}

func TestTab_NextPrevString(t *testing.T) {
	assert.Equal(t, TabProfile, TabHome.Next())
	assert.Equal(t, TabHome, TabSettings.Next())
	assert.Equal(t, TabSettings, TabHome.Prev())
	assert.Equal(t, "Settings", TabSettings.String())
	assert.Equal(t, "Unknown", Tab(9).String())
	assert.False(t, Tab(3).Valid())
}
