// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package constants

const (
	// ConnectorQueue is the queue group shared by all connector instances.
	// The queue is of the form: sailpoint.csp-connector.queue
	ConnectorQueue = "sailpoint.csp-connector.queue"

	// AccountListSubject is the subject for the account list operation.
	AccountListSubject = "sailpoint.csp-connector.account.list"

	// AccountReadSubject is the subject for the account read operation.
	AccountReadSubject = "sailpoint.csp-connector.account.read"

	// AccountCreateSubject is the subject for the account create operation.
	AccountCreateSubject = "sailpoint.csp-connector.account.create"

	// AccountUpdateSubject is the subject for the account update operation.
	AccountUpdateSubject = "sailpoint.csp-connector.account.update"

	// AccountEnableSubject is the subject for the account enable operation.
	AccountEnableSubject = "sailpoint.csp-connector.account.enable"

	// AccountDisableSubject is the subject for the account disable operation.
	AccountDisableSubject = "sailpoint.csp-connector.account.disable"

	// AccountDeleteSubject is the subject for the account delete operation.
	AccountDeleteSubject = "sailpoint.csp-connector.account.delete"

	// EntitlementListSubject is the subject for the entitlement list operation.
	EntitlementListSubject = "sailpoint.csp-connector.entitlement.list"

	// EntitlementReadSubject is the subject for the entitlement read operation.
	EntitlementReadSubject = "sailpoint.csp-connector.entitlement.read"

	// TestConnectionSubject is the subject for the connectivity check.
	TestConnectionSubject = "sailpoint.csp-connector.test_connection"
)
