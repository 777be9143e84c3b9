package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var ErrInvalidABI = errors.New("invalid abi")

var (
	identifierRegex  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	arraySuffixRegex = regexp.MustCompile(`^(\[[0-9]*\])*$`)
)

type abiArgumentJSON struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Indexed    bool              `json:"indexed,omitempty"`
	Components []abiArgumentJSON `json:"components,omitempty"`
}

type abiEntryJSON struct {
	Type            string            `json:"type"`
	Name            string            `json:"name,omitempty"`
	Inputs          []abiArgumentJSON `json:"inputs"`
	Outputs         []abiArgumentJSON `json:"outputs,omitempty"`
	StateMutability string            `json:"stateMutability,omitempty"`
	Anonymous       bool              `json:"anonymous,omitempty"`
}

// CanonicalizeABI validates a user supplied ABI and returns it as a compact JSON array of definition objects.
// Entries may be JSON definition objects or human-readable signatures such as
// "function transfer(address to, uint256 amount) returns (bool)". The whole ABI may also arrive
// as a JSON string holding the array.
func CanonicalizeABI(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty abi", ErrInvalidABI)
	}
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidABI, err)
		}
		trimmed = bytes.TrimSpace([]byte(inner))
	}

	if bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: abi is null", ErrInvalidABI)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array: %v", ErrInvalidABI, err)
	}

	canonical := make([]json.RawMessage, 0, len(entries))
	for i, entry := range entries {
		entry = bytes.TrimSpace(entry)
		if len(entry) == 0 {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrInvalidABI, i)
		}
		switch entry[0] {
		case '"':
			var signature string
			if err := json.Unmarshal(entry, &signature); err != nil {
				return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidABI, i, err)
			}
			parsed, err := parseSignature(signature, "function")
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidABI, i, err)
			}
			encoded, err := json.Marshal(parsed)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidABI, i, err)
			}
			canonical = append(canonical, encoded)
		case '{':
			var buf bytes.Buffer
			if err := json.Compact(&buf, entry); err != nil {
				return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidABI, i, err)
			}
			canonical = append(canonical, buf.Bytes())
		default:
			return nil, fmt.Errorf("%w: entry %d is neither a definition object nor a signature", ErrInvalidABI, i)
		}
	}

	encoded, err := json.Marshal(canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidABI, err)
	}
	if _, err := ParseABI(encoded); err != nil {
		return nil, err
	}
	return encoded, nil
}

// ParseABI parses a JSON ABI and rejects argument types that abi.JSON lets through but no contract
// can declare, such as uint7, bytes0 or a tuple without components.
func ParseABI(raw json.RawMessage) (*abi.ABI, error) {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidABI, err)
	}
	if err := validateArguments("constructor", parsed.Constructor.Inputs); err != nil {
		return nil, err
	}
	for name, method := range parsed.Methods {
		if err := validateArguments(name, method.Inputs); err != nil {
			return nil, err
		}
		if err := validateArguments(name, method.Outputs); err != nil {
			return nil, err
		}
	}
	for name, event := range parsed.Events {
		if err := validateArguments(name, event.Inputs); err != nil {
			return nil, err
		}
	}
	for name, abiError := range parsed.Errors {
		if err := validateArguments(name, abiError.Inputs); err != nil {
			return nil, err
		}
	}
	return &parsed, nil
}

func validateArguments(owner string, args abi.Arguments) error {
	for _, arg := range args {
		if err := validateType(&arg.Type); err != nil {
			return fmt.Errorf("%w: %s argument '%s': %v", ErrInvalidABI, owner, arg.Name, err)
		}
	}
	return nil
}

func validateType(t *abi.Type) error {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		if t.Size < 8 || t.Size > 256 || t.Size%8 != 0 {
			return fmt.Errorf("unsupported integer size %d", t.Size)
		}
	case abi.FixedBytesTy:
		if t.Size < 1 || t.Size > 32 {
			return fmt.Errorf("unsupported bytes size %d", t.Size)
		}
	case abi.SliceTy, abi.ArrayTy:
		if t.Elem == nil {
			return fmt.Errorf("array without element type")
		}
		return validateType(t.Elem)
	case abi.TupleTy:
		if len(t.TupleElems) == 0 {
			return fmt.Errorf("tuple without components")
		}
		for _, elem := range t.TupleElems {
			if err := validateType(elem); err != nil {
				return err
			}
		}
	}
	return nil
}

func ConstructFunctionABI(signature string) (*abi.Method, error) {
	entry, err := parseSignature(signature, "function")
	if err != nil {
		return nil, err
	}
	if entry.Type != "function" {
		return nil, fmt.Errorf("signature '%s' is not a function", signature)
	}
	parsed, err := abiFromEntry(entry)
	if err != nil {
		return nil, err
	}
	method, ok := parsed.Methods[entry.Name]
	if !ok {
		return nil, fmt.Errorf("function '%s' missing from parsed abi", entry.Name)
	}
	return &method, nil
}

func ConstructEventABI(signature string) (*abi.Event, error) {
	entry, err := parseSignature(signature, "event")
	if err != nil {
		return nil, err
	}
	if entry.Type != "event" {
		return nil, fmt.Errorf("signature '%s' is not an event", signature)
	}
	parsed, err := abiFromEntry(entry)
	if err != nil {
		return nil, err
	}
	event, ok := parsed.Events[entry.Name]
	if !ok {
		return nil, fmt.Errorf("event '%s' missing from parsed abi", entry.Name)
	}
	return &event, nil
}

func abiFromEntry(entry *abiEntryJSON) (*abi.ABI, error) {
	encoded, err := json.Marshal([]*abiEntryJSON{entry})
	if err != nil {
		return nil, err
	}
	return ParseABI(encoded)
}

// parseSignature turns a human-readable definition into its JSON ABI form.
// A signature without a leading keyword is read as defaultKind.
func parseSignature(signature string, defaultKind string) (*abiEntryJSON, error) {
	s := strings.TrimSpace(signature)
	open := strings.Index(s, "(")
	if open == -1 {
		return nil, fmt.Errorf("invalid signature format '%s'", signature)
	}
	closing := matchingParen(s, open)
	if closing == -1 {
		return nil, fmt.Errorf("unbalanced parentheses in '%s'", signature)
	}

	entry := &abiEntryJSON{Inputs: []abiArgumentJSON{}}
	head := strings.Fields(s[:open])
	switch len(head) {
	case 1:
		switch head[0] {
		case "constructor", "fallback", "receive":
			entry.Type = head[0]
		default:
			entry.Type = defaultKind
			entry.Name = head[0]
		}
	case 2:
		switch head[0] {
		case "function", "event", "error":
			entry.Type = head[0]
			entry.Name = head[1]
		default:
			return nil, fmt.Errorf("unknown definition kind '%s'", head[0])
		}
	default:
		return nil, fmt.Errorf("invalid signature format '%s'", signature)
	}
	if entry.Name != "" && !identifierRegex.MatchString(entry.Name) {
		return nil, fmt.Errorf("invalid name '%s'", entry.Name)
	}

	inputs, err := parseArguments(s[open+1:closing], entry.Type == "event")
	if err != nil {
		return nil, fmt.Errorf("failed to parse params of '%s': %v", signature, err)
	}
	entry.Inputs = inputs

	modifiers := strings.TrimSpace(s[closing+1:])
	if idx := strings.Index(modifiers, "returns"); idx != -1 {
		returns := strings.TrimSpace(modifiers[idx+len("returns"):])
		modifiers = modifiers[:idx]
		if !strings.HasPrefix(returns, "(") || matchingParen(returns, 0) != len(returns)-1 {
			return nil, fmt.Errorf("invalid returns clause in '%s'", signature)
		}
		outputs, err := parseArguments(returns[1:len(returns)-1], false)
		if err != nil {
			return nil, fmt.Errorf("failed to parse outputs of '%s': %v", signature, err)
		}
		entry.Outputs = outputs
	}
	for _, modifier := range strings.Fields(modifiers) {
		switch modifier {
		case "view", "pure", "payable", "nonpayable":
			entry.StateMutability = modifier
		case "anonymous":
			entry.Anonymous = true
		case "external", "public", "virtual", "override":
		default:
			return nil, fmt.Errorf("unknown modifier '%s'", modifier)
		}
	}
	if entry.StateMutability == "" && (entry.Type == "function" || entry.Type == "constructor" || entry.Type == "fallback") {
		entry.StateMutability = "nonpayable"
	}
	if entry.Type == "receive" {
		entry.StateMutability = "payable"
	}
	if entry.Type == "function" && entry.Outputs == nil {
		entry.Outputs = []abiArgumentJSON{}
	}
	return entry, nil
}

func parseArguments(params string, allowIndexed bool) ([]abiArgumentJSON, error) {
	paramList := splitParams(strings.TrimSpace(params))
	args := make([]abiArgumentJSON, 0, len(paramList))
	for _, param := range paramList {
		cleaned, indexed := stripModifiers(param)
		if indexed && !allowIndexed {
			return nil, fmt.Errorf("'indexed' is only valid for event params: '%s'", param)
		}
		argName, paramType, err := getArgNameAndType(cleaned, "")
		if err != nil {
			return nil, fmt.Errorf("failed to get arg name and type '%s': %v", param, err)
		}
		arg, err := argumentFromType(argName, paramType)
		if err != nil {
			return nil, err
		}
		arg.Indexed = indexed
		args = append(args, arg)
	}
	return args, nil
}

func argumentFromType(name string, paramType string) (abiArgumentJSON, error) {
	if !isTuple(paramType) {
		return abiArgumentJSON{Name: name, Type: normalizeElementaryType(paramType)}, nil
	}
	lastParenIndex := strings.LastIndex(paramType, ")")
	suffix := paramType[lastParenIndex+1:]
	if !arraySuffixRegex.MatchString(suffix) {
		return abiArgumentJSON{}, fmt.Errorf("invalid tuple suffix '%s'", suffix)
	}
	components, err := marshalParamArguments(paramType[1:lastParenIndex])
	if err != nil {
		return abiArgumentJSON{}, fmt.Errorf("failed to marshal tuple: %v", err)
	}
	return abiArgumentJSON{Name: name, Type: "tuple" + suffix, Components: components}, nil
}

func marshalParamArguments(param string) ([]abiArgumentJSON, error) {
	paramList := splitParams(param)
	components := []abiArgumentJSON{}
	for idx, param := range paramList {
		cleaned, _ := stripModifiers(param)
		// tuple components need a name to become struct fields when unpacked
		argName, paramType, err := getArgNameAndType(cleaned, fmt.Sprintf("field%d", idx))
		if err != nil {
			return nil, fmt.Errorf("failed to get arg name and type '%s': %v", param, err)
		}
		component, err := argumentFromType(argName, paramType)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return components, nil
}

func normalizeElementaryType(paramType string) string {
	base, suffix := paramType, ""
	if idx := strings.Index(paramType, "["); idx != -1 {
		base, suffix = paramType[:idx], paramType[idx:]
	}
	switch base {
	case "uint":
		base = "uint256"
	case "int":
		base = "int256"
	case "byte":
		base = "bytes1"
	}
	return base + suffix
}

// stripModifiers drops data location keywords and reports whether the param was marked indexed.
func stripModifiers(param string) (string, bool) {
	param = strings.TrimSpace(param)
	head, tail := "", param
	if isTuple(param) {
		lastParenIndex := strings.LastIndex(param, ")")
		if lastParenIndex != -1 {
			head, tail = param[:lastParenIndex+1], param[lastParenIndex+1:]
		}
	}
	indexed := false
	kept := []string{}
	for _, token := range strings.Fields(tail) {
		switch token {
		case "indexed":
			indexed = true
		case "memory", "calldata", "storage", "payable":
		default:
			kept = append(kept, token)
		}
	}
	rest := strings.Join(kept, " ")
	if head == "" {
		return rest, indexed
	}
	if strings.HasPrefix(rest, "[") {
		return head + rest, indexed
	}
	return strings.TrimSpace(head + " " + rest), indexed
}

func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

/**
 * Splits a string of parameters into a list of parameters
 */
func splitParams(params string) []string {
	var result []string
	depth := 0
	current := ""
	for _, r := range params {
		switch r {
		case ',':
			if depth == 0 {
				result = append(result, strings.TrimSpace(current))
				current = ""
				continue
			}
		case '(':
			depth++
		case ')':
			depth--
		}
		current += string(r)
	}
	if strings.TrimSpace(current) != "" {
		result = append(result, strings.TrimSpace(current))
	}
	return result
}

func getArgNameAndType(param string, fallbackName string) (name string, paramType string, err error) {
	if isTuple(param) {
		lastParenIndex := strings.LastIndex(param, ")")
		if lastParenIndex == -1 {
			return "", "", fmt.Errorf("invalid tuple format")
		}
		paramsEndIdx := lastParenIndex + 1
		for paramsEndIdx < len(param) && param[paramsEndIdx] == '[' {
			closing := strings.Index(param[paramsEndIdx:], "]")
			if closing == -1 {
				return "", "", fmt.Errorf("invalid tuple array format")
			}
			paramsEndIdx += closing + 1
		}
		argName := strings.TrimSpace(param[paramsEndIdx:])
		if argName == "" {
			argName = fallbackName
		}
		return argName, param[:paramsEndIdx], nil
	}
	tokens := strings.Fields(param)
	switch len(tokens) {
	case 0:
		return "", "", fmt.Errorf("empty param")
	case 1:
		return fallbackName, strings.TrimSpace(tokens[0]), nil
	case 2:
		return strings.TrimSpace(tokens[1]), tokens[0], nil
	default:
		return "", "", fmt.Errorf("unexpected tokens in param '%s'", param)
	}
}

func isTuple(param string) bool {
	return strings.HasPrefix(param, "(")
}
