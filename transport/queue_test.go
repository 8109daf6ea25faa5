package transport

import (
	"testing"

	"github.com/lguibr/pongo/game"
	"github.com/stretchr/testify/assert"
)

func TestInputQueueDrainReturnsInArrivalOrder(t *testing.T) {
	q := newInputQueue()
	q.push(Datagram{Input: game.ClientInput{PlayerID: "1"}})
	q.push(Datagram{Input: game.ClientInput{PlayerID: "2"}})

	out := q.Drain()
	assert.Len(t, out, 2)
	assert.Equal(t, "1", out[0].Input.PlayerID)
	assert.Equal(t, "2", out[1].Input.PlayerID)
}

func TestInputQueueDrainEmptiesTheQueue(t *testing.T) {
	q := newInputQueue()
	q.push(Datagram{Input: game.ClientInput{PlayerID: "1"}})
	q.Drain()
	assert.Nil(t, q.Drain())
}
