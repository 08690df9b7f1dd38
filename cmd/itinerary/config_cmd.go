package main

// runConfigCmd prints the effective configuration as YAML after applying
// the config file, environment variables, and flags.
func runConfigCmd(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	s, err := newSession(&flags.common, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, s.cfg)
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	out, err := s.cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
