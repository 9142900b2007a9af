package repository

import (
	"fmt"

	"backing_tracks/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// backingTypeList is the stored form of RequestOptions.BackingTypes.
//
// Older records hold a single string or a string set instead of a list.
// Every shape decodes to the same normalized list, and writes always use L.
type backingTypeList []entities.BackingType

var (
	_ attributevalue.Marshaler   = backingTypeList(nil)
	_ attributevalue.Unmarshaler = (*backingTypeList)(nil)
)

func (l backingTypeList) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	if len(l) == 0 {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
	out := make([]types.AttributeValue, 0, len(l))
	for _, b := range l {
		out = append(out, &types.AttributeValueMemberS{Value: string(b)})
	}
	return &types.AttributeValueMemberL{Value: out}, nil
}

func (l *backingTypeList) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw []string
	switch v := av.(type) {
	case *types.AttributeValueMemberNULL:
	case *types.AttributeValueMemberS:
		raw = []string{v.Value}
	case *types.AttributeValueMemberSS:
		raw = v.Value
	case *types.AttributeValueMemberL:
		raw = make([]string, 0, len(v.Value))
		for i, e := range v.Value {
			s, ok := e.(*types.AttributeValueMemberS)
			if !ok {
				return fmt.Errorf("repository: backing_types[%d]: expected string, got %T", i, e)
			}
			raw = append(raw, s.Value)
		}
	default:
		return fmt.Errorf("repository: backing_types: unsupported attribute %T", av)
	}
	*l = nil
	if n := entities.NormalizeBackingTypes(raw); len(n) > 0 {
		*l = backingTypeList(n)
	}
	return nil
}
