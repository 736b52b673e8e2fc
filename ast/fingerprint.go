package ast

import (
	"encoding/binary"
	"strconv"

	"github.com/minio/highwayhash"
)

var fingerprintKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint computes a stable structural hash of a function: its name,
// parameter list, and the document-order kind sequence of its body, with
// identifier names, operators and literal values mixed in so that two
// functions differing only in a call target or operator hash apart.
//
// Equal trees always produce equal fingerprints; the hash is the memoization
// key for the analysis pipeline.
func Fingerprint(fn *Function) (uint64, error) {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	buf := make([]byte, 0, 256)
	buf = append(buf, fn.Name...)
	buf = append(buf, 0)
	for _, p := range fn.Params {
		buf = append(buf, p...)
		buf = append(buf, 0)
	}
	WalkList(fn.Body, func(n Node) bool {
		buf = binary.AppendUvarint(buf, uint64(n.Kind()))
		switch t := n.(type) {
		case *Call:
			buf = append(buf, t.Target...)
		case *Var:
			buf = append(buf, t.Name...)
		case *Assignment:
			buf = append(buf, t.Name...)
		case *For:
			buf = append(buf, t.Var...)
		case *ArrayAccess:
			buf = append(buf, t.Name...)
		case *MatrixAccess:
			buf = append(buf, t.Name...)
		case *BinOp:
			buf = append(buf, t.Op...)
		case *BoolOp:
			buf = append(buf, t.Op...)
		case *UnaryOp:
			buf = append(buf, t.Op...)
		case *Number:
			buf = strconv.AppendInt(buf, int64(t.Value), 10)
		case *Boolean:
			buf = strconv.AppendBool(buf, t.Value)
		}
		buf = append(buf, 0)
		return true
	})
	if _, err := h.Write(buf); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
