package app

import (
	"io"

	"go.ytsaurus.tech/library/go/core/xerrors"
	"go.ytsaurus.tech/yt/go/yson"
)

// ReadList decodes a single YSON list from r.
func ReadList(r io.Reader) ([]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("failed to read input: %w", err)
	}

	var values []any
	if err := yson.Unmarshal(data, &values); err != nil {
		return nil, xerrors.Errorf("input is not a YSON list: %w", err)
	}
	return values, nil
}

// WriteValue encodes v to w in the given format followed by a newline.
func WriteValue(w io.Writer, v any, format yson.Format) error {
	data, err := yson.MarshalFormat(v, format)
	if err != nil {
		return xerrors.Errorf("failed to encode output: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return xerrors.Errorf("failed to write output: %w", err)
	}
	return nil
}
