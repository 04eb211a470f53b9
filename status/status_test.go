package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPrecedence( t *testing.T ) {
	s := NewStatus().Success( "x", "ok" ).Warning( "x", "careful", nil )
	assert.True( t, s.IsWarning() )
	assert.False( t, s.IsError() )

	s = s.Error( "x", "broke", errors.New("boom") )
	assert.True( t, s.IsError() )
}

func TestAppendConcatenatesAndTakesMaxKind( t *testing.T ) {
	a := NewStatus().Success( "a", "fine" )
	b := NewStatus().Warning( "b", "hmm", nil )
	c := a.Append( b )
	assert.Len( t, c.Events(), 2 )
	assert.True( t, c.IsWarning() )
}

func TestAddEventDoesNotMutateOriginal( t *testing.T ) {
	a := NewStatus().Success( "a", "fine" )
	b := a.AddEvent( Event{ KindError, "b", "bad", nil } )
	assert.Len( t, a.Events(), 1 )
	assert.Len( t, b.Events(), 2 )
}

func TestResultIntoAndEmpty( t *testing.T ) {
	r := Into( NewStatus().Success( "x", "ok" ), 42 )
	v, ok := r.Value()
	assert.True( t, ok )
	assert.Equal( t, 42, v )
	assert.True( t, r.IsSuccess() )

	e := Empty[int]( NewStatus().Error( "x", "nope", nil ) )
	assert.False( t, e.HasValue() )
	assert.True( t, e.IsError() )
}
