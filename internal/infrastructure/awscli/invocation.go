package awscli

// Invocation composes the argument vector for one aws CLI call. Region and
// profile flags are appended only when set, region first, both ahead of the
// subcommand arguments.
func Invocation(region, profile string, args ...string) []string {
	argv := make([]string, 0, len(args)+4)
	if region != "" {
		argv = append(argv, "--region", region)
	}
	if profile != "" {
		argv = append(argv, "--profile", profile)
	}
	return append(argv, args...)
}
