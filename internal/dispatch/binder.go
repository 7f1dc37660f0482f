package dispatch

// Bind walks a command's declared arguments in order and converts the token
// at each argument's own position: token i binds to argument i. A required
// argument without a token, or more tokens than declared, fails with
// *WrongArgumentNumberError; a factory refusal fails with the factory's
// error. Optional arguments without a token are left out of the map
// entirely, and no partial map survives a failure.
func Bind(factories *FactoryRegistry, cmd *Command, args []string) (*ArgumentMap, error) {
	if len(args) > len(cmd.Arguments) {
		return nil, &WrongArgumentNumberError{Command: cmd, Supplied: len(args)}
	}

	values := make(map[string]any, len(cmd.Arguments))
	for i, decl := range cmd.Arguments {
		if i >= len(args) {
			if decl.Required {
				return nil, &WrongArgumentNumberError{Command: cmd, Supplied: len(args)}
			}
			continue
		}
		factory, err := factories.Get(decl.Type)
		if err != nil {
			return nil, err
		}
		value, err := factory(args[i])
		if err != nil {
			return nil, err
		}
		values[decl.Key] = value
	}
	return newArgumentMap(values), nil
}
