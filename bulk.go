package estyped

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// BulkOperation is one per-document action of a bulk request. Closed set:
// BulkIndex, BulkCreate, BulkDelete, BulkUpdate.
type BulkOperation interface {
	bulkVariant()
}

// BulkIndex indexes the document, replacing any existing one with the same id.
type BulkIndex struct {
	Index    IndexName
	Mapping  MappingName
	Id       DocId
	Document interface{}
}

// BulkCreate indexes the document, failing server-side if the id exists.
type BulkCreate struct {
	Index    IndexName
	Mapping  MappingName
	Id       DocId
	Document interface{}
}

// BulkDelete removes the document. It contributes no document line.
type BulkDelete struct {
	Index   IndexName
	Mapping MappingName
	Id      DocId
}

// BulkUpdate applies a partial document; the payload is wrapped as
// {"doc": value} on the wire.
type BulkUpdate struct {
	Index    IndexName
	Mapping  MappingName
	Id       DocId
	Document interface{}
}

func (BulkIndex) bulkVariant()  {}
func (BulkCreate) bulkVariant() {}
func (BulkDelete) bulkVariant() {}
func (BulkUpdate) bulkVariant() {}

// bulkMeta is the metadata half of a bulk line pair. Struct field order
// keeps the rendered key order stable.
type bulkMeta struct {
	Index IndexName   `json:"_index"`
	Type  MappingName `json:"_type"`
	Id    DocId       `json:"_id"`
}

// EncodeBulkOperations renders the operations as an NDJSON stream: one
// metadata line per operation, a document line for everything but delete,
// operations in input order, and a trailing newline. The receiving service
// associates lines pairwise, so order is part of the contract.
func EncodeBulkOperations(ops []BulkOperation) (*bytes.Buffer, error) {
	var buff bytes.Buffer
	if err := WriteBulkOperations(&buff, ops); err != nil {
		return nil, err
	}
	return &buff, nil
}

// WriteBulkOperations streams the NDJSON encoding of ops to w.
func WriteBulkOperations(w io.Writer, ops []BulkOperation) error {
	for _, op := range ops {
		var (
			kind string
			meta bulkMeta
			doc  interface{}
		)

		switch o := op.(type) {
		case BulkIndex:
			kind, meta, doc = "index", bulkMeta{o.Index, o.Mapping, o.Id}, o.Document
		case BulkCreate:
			kind, meta, doc = "create", bulkMeta{o.Index, o.Mapping, o.Id}, o.Document
		case BulkDelete:
			kind, meta = "delete", bulkMeta{o.Index, o.Mapping, o.Id}
		case BulkUpdate:
			kind = "update"
			meta = bulkMeta{o.Index, o.Mapping, o.Id}
			doc = map[string]interface{}{"doc": o.Document}
		default:
			return errors.Errorf("unknown bulk operation type: %T", op)
		}

		if err := writeJSONLine(w, map[string]bulkMeta{kind: meta}); err != nil {
			return errors.Wrapf(err, "failed to encode bulk %s metadata", kind)
		}

		if _, isDelete := op.(BulkDelete); isDelete {
			continue
		}
		if err := writeJSONLine(w, doc); err != nil {
			return errors.Wrapf(err, "failed to encode bulk %s document", kind)
		}
	}

	return nil
}
