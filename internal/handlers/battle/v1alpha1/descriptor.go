package v1alpha1

import (
	"context"
	_ "embed"
	"encoding/json"
	"reflect"
	"sync"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// ProtoPath is the import path battle.proto is registered under
const ProtoPath = "rpgbattle/api/v1alpha1/battle.proto"

//go:embed battle.proto
var protoSource string

var (
	fileOnce sync.Once
	fileDesc protoreflect.FileDescriptor
	fileErr  error
)

// File returns the compiled descriptor of battle.proto. The first call
// registers it with protoregistry.GlobalFiles so server reflection can
// describe BattleService.
func File() (protoreflect.FileDescriptor, error) {
	fileOnce.Do(func() {
		fileDesc, fileErr = compileFile()
	})
	return fileDesc, fileErr
}

func compileFile() (protoreflect.FileDescriptor, error) {
	if existing, err := protoregistry.GlobalFiles.FindFileByPath(ProtoPath); err == nil {
		return existing, nil
	}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{ProtoPath: protoSource}),
		}),
	}
	files, err := compiler.Compile(context.Background(), ProtoPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile battle.proto")
	}

	fd, err := protodesc.NewFile(protodesc.ToFileDescriptorProto(files[0]), protoregistry.GlobalFiles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build battle.proto descriptor")
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		return nil, errors.Wrap(err, "failed to register battle.proto")
	}
	return fd, nil
}

// newWire returns an empty wire message for the Go message type T. Message
// names in battle.proto match the Go struct names.
func newWire[T any]() (*dynamicpb.Message, error) {
	fd, err := File()
	if err != nil {
		return nil, err
	}
	name := reflect.TypeFor[T]().Name()
	md := fd.Messages().ByName(protoreflect.Name(name))
	if md == nil {
		return nil, errors.Internalf("battle.proto has no message %s", name)
	}
	return dynamicpb.NewMessage(md), nil
}

// toWire converts a Go message to its protobuf form
func toWire[T any](v *T) (proto.Message, error) {
	msg, err := newWire[T]()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return msg, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, errors.Wrap(err, "failed to convert message")
	}
	return msg, nil
}

// fromWire fills v from its protobuf form
func fromWire[T any](msg proto.Message, v *T) error {
	data, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to convert message")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "failed to decode message")
	}
	return nil
}
