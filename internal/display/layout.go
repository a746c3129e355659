package display

// SingleLayoutArgs builds the xrandr argument list that keeps one display
// as the primary, auto-configured output and turns every other parsed
// output off.
func SingleLayoutArgs(sections []Section, keep string) []string {
	args := []string{"--output", keep, "--primary", "--auto"}
	return append(args, offArgs(sections, keep)...)
}

// DualLayoutArgs builds the xrandr argument list that places right to the
// right of left, with left primary, and turns every other output off.
func DualLayoutArgs(sections []Section, left, right string) []string {
	args := []string{
		"--output", left, "--primary", "--auto",
		"--output", right, "--auto", "--right-of", left,
	}
	return append(args, offArgs(sections, left, right)...)
}

// offArgs emits "--output <name> --off" for every section not excluded.
func offArgs(sections []Section, exclude ...string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var args []string
	for _, section := range sections {
		if excluded[section.Name] {
			continue
		}
		args = append(args, "--output", section.Name, "--off")
	}
	return args
}
