package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"math/big"

	"github.com/dave/jennifer/jen"

	"github.com/krombrey/regenum/internal/regerr"
	"github.com/krombrey/regenum/internal/sequence"
)

// MaxInlineWords is the default cardinality ceiling for EmitTable. A
// generator whose Len() exceeds it is rejected rather than materialized,
// since every word is held in memory and as a Go source literal at once.
const MaxInlineWords = 4096

// EmitTable walks gen's full language and writes a formatted Go source file
// to w declaring var <name>Words = []string{...} and a <Name>At(i int)
// string accessor over it. name's first letter is upper-cased for the
// exported accessor and lower-cased for the package-level slice, following the teacher's
// lower/upper first-letter convention for generated identifiers.
func EmitTable(w io.Writer, pkg, name string, gen sequence.Generator) error {
	length := gen.Len()
	max := big.NewInt(MaxInlineWords)
	if length.Cmp(max) > 0 {
		return fmt.Errorf("%w: %s words exceeds inline limit %d", regerr.ErrCardinalityOverflow, length.String(), MaxInlineWords)
	}

	words := make([]jen.Code, 0, length.Int64())
	n := length.Int64()
	for i := int64(0); i < n; i++ {
		word, err := gen.At(big.NewInt(i))
		if err != nil {
			return fmt.Errorf("codegen: emit word %d: %w", i, err)
		}
		words = append(words, jen.Lit(word))
	}

	wordsName := LowerFirst(name) + WordsSuffix
	atName := UpperFirst(name) + AtSuffix

	f := jen.NewFile(pkg)
	f.Comment("Code generated by regenum. DO NOT EDIT.")
	f.Line()
	f.Var().Id(wordsName).Op("=").Index().String().Values(words...)
	f.Line()
	f.Comment(fmt.Sprintf("%s returns the i-th word of %s, panicking if i is out of range.", atName, wordsName))
	f.Func().Id(atName).Params(jen.Id("i").Int()).String().Block(
		jen.Return(jen.Id(wordsName).Index(jen.Id("i"))),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("codegen: render: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("codegen: format: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}
