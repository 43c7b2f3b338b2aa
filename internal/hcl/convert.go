package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// hostEvalContext builds the eval context for pipeline files, exposing the
// given environment (os.Environ form) as the `env` object.
func hostEvalContext(environ []string) *hcl.EvalContext {
	attrs := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		attrs[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(attrs),
		},
	}
}

// stringValue evaluates an expression to a string. A nil expression (absent
// optional attribute) yields the empty string.
func stringValue(expr hcl.Expression, evalCtx *hcl.EvalContext, what string) (string, error) {
	if expr == nil {
		return "", nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate %s: %w", what, diags)
	}
	if val.IsNull() {
		return "", nil
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%s must be a string: %w", what, err)
	}
	return val.AsString(), nil
}

// stringListValue evaluates an expression to an ordered list of strings.
func stringListValue(expr hcl.Expression, evalCtx *hcl.EvalContext, what string) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate %s: %w", what, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("%s must be a list of strings, got %s", what, val.Type().FriendlyName())
	}

	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		elem, err := convert.Convert(elem, cty.String)
		if err != nil {
			return nil, fmt.Errorf("%s must contain only strings: %w", what, err)
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}

// stringMapValue evaluates an expression to a string-to-string mapping.
func stringMapValue(expr hcl.Expression, evalCtx *hcl.EvalContext, what string) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate %s: %w", what, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("%s must be a map of strings, got %s", what, ty.FriendlyName())
	}

	out := make(map[string]string)
	for it := val.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		elem, err := convert.Convert(elem, cty.String)
		if err != nil {
			return nil, fmt.Errorf("%s must contain only string values: %w", what, err)
		}
		out[key.AsString()] = elem.AsString()
	}
	return out, nil
}
