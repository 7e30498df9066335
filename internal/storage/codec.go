package storage

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func encode(m proto.Message) ([]byte, error) {
	a, err := anypb.New(m)
	if err != nil {
		return nil, fmt.Errorf("wrap value: %w", err)
	}
	b, err := proto.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}
	return b, nil
}

func unpack(raw []byte) (*anypb.Any, error) {
	var a anypb.Any
	if err := proto.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptValue, err)
	}
	return &a, nil
}

// decodeInto unmarshals raw into dst, which must match the stored type.
func decodeInto(raw []byte, dst proto.Message) error {
	a, err := unpack(raw)
	if err != nil {
		return err
	}
	if !a.MessageIs(dst) {
		return fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch,
			a.MessageName(), dst.ProtoReflect().Descriptor().FullName())
	}
	if err := a.UnmarshalTo(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptValue, err)
	}
	return nil
}

// decodeValue returns the Go value behind raw: string, int or bool.
func decodeValue(raw []byte) (any, error) {
	a, err := unpack(raw)
	if err != nil {
		return nil, err
	}
	m, err := a.UnmarshalNew()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptValue, err)
	}

	switch v := m.(type) {
	case *wrapperspb.StringValue:
		return v.GetValue(), nil
	case *wrapperspb.Int64Value:
		return int(v.GetValue()), nil
	case *wrapperspb.BoolValue:
		return v.GetValue(), nil
	}
	return nil, fmt.Errorf("%w: unsupported %s", ErrTypeMismatch, a.MessageName())
}
