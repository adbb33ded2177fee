package libtri

import (
	"github.com/2x3systems/gotri/gotri"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// NetworkExpr is a network written as a sequence of statements:
//
//	# comment
//	region 1 = 8 [2 3 9]
//	line [1 2 3]
type NetworkExpr struct {
	Stmts []*Stmt `@@*`
}

type Stmt struct {
	Region *RegionStmt `  @@`
	Line   *LineStmt   `| @@`
}

type RegionStmt struct {
	ID    int      `"region" @Int "="`
	Value int64    `@Int`
	Vtx   []string `"[" ( @(Ident | Int) ","? )* "]"`
}

type LineStmt struct {
	Vtx []string `"line" "[" ( @(Ident | Int) ","? )* "]"`
}

var networkLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[=\[\],]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parseNetworkExpr = participle.MustBuild[NetworkExpr](participle.Lexer(networkLexer))

// ParseNetwork parses a network expression into a NetworkDef.
func ParseNetwork(expr string) (*NetworkDef, error) {
	Nexpr, err := parseNetworkExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrap(gotri.ErrBadNetworkExpr, err.Error())
	}

	def := &NetworkDef{}
	for _, stmt := range Nexpr.Stmts {
		switch {
		case stmt.Region != nil:
			if gotri.BaseRegionID(stmt.Region.ID) == 0 {
				return nil, errors.Wrapf(gotri.ErrBadRegionID, "region %d", stmt.Region.ID)
			}
			def.Regions = append(def.Regions, RegionSpec{
				ID:    stmt.Region.ID,
				Value: stmt.Region.Value,
				Vtx:   toVtxIDs(stmt.Region.Vtx),
			})
		case stmt.Line != nil:
			def.Lines = append(def.Lines, toVtxIDs(stmt.Line.Vtx))
		}
	}
	return def, nil
}
