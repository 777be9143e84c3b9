package common

type DecodedArgument struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Value   interface{} `json:"value"`
	Indexed bool        `json:"indexed,omitempty"`
}

type DecodedCall struct {
	Name      string            `json:"name"`
	Signature string            `json:"signature"`
	Selector  string            `json:"selector"`
	Verified  bool              `json:"verified"`
	Args      []DecodedArgument `json:"args"`
}

type DecodedEvent struct {
	Name      string            `json:"name"`
	Signature string            `json:"signature"`
	Address   string            `json:"address"`
	LogIndex  uint64            `json:"log_index"`
	Args      []DecodedArgument `json:"args"`
}

// Params returns the decoded arguments keyed by name. Unnamed arguments are keyed by position.
func (e *DecodedEvent) Params() map[string]interface{} {
	return argumentsToMap(e.Args)
}

func (c *DecodedCall) Params() map[string]interface{} {
	return argumentsToMap(c.Args)
}

func argumentsToMap(args []DecodedArgument) map[string]interface{} {
	params := make(map[string]interface{}, len(args))
	for i, arg := range args {
		key := arg.Name
		if key == "" {
			key = positionalName(i)
		}
		params[key] = arg.Value
	}
	return params
}
