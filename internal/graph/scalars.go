package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
)

// decimalScalar maps money columns to a string-serialized fixed-point
// value so amounts never round-trip through float64.
var decimalScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Arbitrary-precision decimal, serialized as a string.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.String()
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return v.String()
		default:
			return nil
		}
	},
	ParseValue: func(value interface{}) interface{} {
		return parseDecimal(value)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			return parseDecimal(v.Value)
		case *ast.IntValue:
			return parseDecimal(v.Value)
		case *ast.FloatValue:
			return parseDecimal(v.Value)
		default:
			return nil
		}
	},
})

func parseDecimal(value interface{}) interface{} {
	switch v := value.(type) {
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil
		}
		return d
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	default:
		return nil
	}
}
