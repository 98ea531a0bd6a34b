package board

import "github.com/apex/log"

// logger receives debug entries for rejected mutations. It is read without
// locking, so replace it before boards are shared between goroutines.
var logger log.Interface = log.Log

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l log.Interface) {
	if l == nil {
		l = log.Log
	}
	logger = l
}

// Fields implements log.Fielder.
func (b Board) Fields() log.Fields {
	return log.Fields{
		"turn":     b.Turn.String(),
		"pieces":   b.Count(),
		"occupied": uint64(b.Occupied()),
		"fen":      b.FEN(),
	}
}

func logRejected(b *Board, op string, err error) {
	logger.WithFields(b).WithField("op", op).WithError(err).Debug("board mutation rejected")
}
