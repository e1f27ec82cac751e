package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	require.True(t, s.IsEmpty())
	require.Nil(t, s.Pop())
	require.Nil(t, s.Top())

	s.Push(stubView{screen: Login})
	s.Push(stubView{screen: Home})
	require.Equal(t, 2, s.Len())
	require.Equal(t, Home, s.Top().Screen())

	require.Equal(t, Home, s.Pop().Screen())
	require.Equal(t, Login, s.Top().Screen())
	require.Equal(t, Login, s.Pop().Screen())
	require.True(t, s.IsEmpty())
}

func TestStackPopTo(t *testing.T) {
	s := NewStack()
	s.Push(stubView{screen: Login})
	s.Push(stubView{screen: Registration})
	s.Push(stubView{screen: Home})

	require.False(t, s.PopTo(NewEntry))
	require.Equal(t, 3, s.Len())

	require.True(t, s.PopTo(Registration))
	require.Equal(t, []Screen{Login, Registration}, s.Screens())

	require.True(t, s.PopTo(Registration))
	require.Equal(t, 2, s.Len())
}

func TestStackReplaceTop(t *testing.T) {
	s := NewStack()
	s.ReplaceTop(stubView{screen: Login})
	require.Equal(t, 1, s.Len())

	s.ReplaceTop(stubView{screen: Home})
	require.Equal(t, []Screen{Home}, s.Screens())
	require.Equal(t, 0, s.IndexOf(Home))
	require.Equal(t, -1, s.IndexOf(Login))
}
