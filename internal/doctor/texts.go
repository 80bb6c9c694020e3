// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package doctor

import "runtime"

// skewMarker is the error code STS returns when the local clock has drifted
// far enough to invalidate request signatures.
const skewMarker = "RequestTimeTooSkewed"

const (
	awsInstallURL       = "https://docs.aws.amazon.com/cli/latest/userguide/getting-started-install.html"
	terraformInstallURL = "https://developer.hashicorp.com/terraform/install"
)

// identityCauses lists the common root causes printed when the identity
// probe fails.
var identityCauses = []string{
	"The access key or secret key is invalid or has been deactivated",
	"Credentials were pasted with extra whitespace or a line break",
	"The wrong profile is selected (AWS_PROFILE or --profile)",
	"A temporary session token has expired",
	"The system clock is out of sync, invalidating request signatures",
}

// identityRemediation lists the remediation steps printed alongside the
// causes.
var identityRemediation = []string{
	"Run 'aws configure' and re-enter the access key and secret key",
	"Unset stale variables: unset AWS_ACCESS_KEY_ID AWS_SECRET_ACCESS_KEY AWS_SESSION_TOKEN",
	"Create fresh credentials in the IAM console and configure them",
	"Confirm the selected profile exists in ~/.aws/credentials",
}

// nextSteps is printed after a fully successful run.
var nextSteps = []string{
	"Change into your lesson working directory",
	"Run 'terraform init' to install providers and configure the backend",
	"Run 'terraform plan' to review the proposed changes",
	"Run 'terraform apply' to provision the lesson resources",
}

// skewCommand returns the platform command that resyncs the system clock.
func skewCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "sudo sntp -sS time.apple.com"
	case "windows":
		return "w32tm /resync"
	default:
		return "sudo chronyc makestep (or: sudo ntpdate pool.ntp.org)"
	}
}
