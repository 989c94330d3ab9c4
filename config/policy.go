package config

import "github.com/spf13/viper"

// PolicyConfig collects the behaviors that were observed to differ
// between the two historical implementations of the system. Rather than
// picking one variant silently, each is an explicit toggle; the defaults
// match the stricter variant except where noted.
type PolicyConfig struct {
	// EnforceUniqueTeacher rejects course creation when the teacher
	// email already owns another course. One historical variant
	// enforced this at creation time, the other not at all.
	EnforceUniqueTeacher bool `mapstructure:"enforce_unique_teacher"`

	// CheckDuplicateAccount rejects administrator-driven enrollment
	// when the student email already has an account.
	CheckDuplicateAccount bool `mapstructure:"check_duplicate_account"`

	// RollbackAccountOnEnrollFailure removes a freshly created student
	// account when the roster insertion fails, so no orphaned accounts
	// are left behind. The historical behavior was to keep the account.
	RollbackAccountOnEnrollFailure bool `mapstructure:"rollback_account_on_enroll_failure"`

	// PurgeGradesOnRemoval deletes a student's grade entries when they
	// are removed from a roster. The historical behavior retains
	// orphaned grades, so this defaults to off.
	PurgeGradesOnRemoval bool `mapstructure:"purge_grades_on_removal"`
}

// DefaultPolicy returns the default policy set.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		EnforceUniqueTeacher:           true,
		CheckDuplicateAccount:          true,
		RollbackAccountOnEnrollFailure: true,
		PurgeGradesOnRemoval:           false,
	}
}

func setPolicyDefaults(v *viper.Viper) {
	p := DefaultPolicy()
	v.SetDefault("policy.enforce_unique_teacher", p.EnforceUniqueTeacher)
	v.SetDefault("policy.check_duplicate_account", p.CheckDuplicateAccount)
	v.SetDefault("policy.rollback_account_on_enroll_failure", p.RollbackAccountOnEnrollFailure)
	v.SetDefault("policy.purge_grades_on_removal", p.PurgeGradesOnRemoval)
}
