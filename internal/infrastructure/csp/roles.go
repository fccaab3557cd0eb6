// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package csp

import (
	_ "embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
)

//go:embed roles.yaml
var rolesYAML []byte

// roleRef is the Role Reference Table: loaded once at startup, never mutated.
var roleRef = mustLoadRoleTable()

// roleTable indexes the tenant's role set by id and by display name. The
// email lookup endpoint reports only role names, so the reverse index is the
// sole way back to role ids on that path.
type roleTable struct {
	roles    []*model.Entitlement
	byID     map[string]*model.Entitlement
	idByName map[string]string
}

type roleFile struct {
	Roles []struct {
		ID          int64  `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"roles"`
}

func loadRoleTable(data []byte) (*roleTable, error) {
	var file roleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse role reference table: %w", err)
	}
	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("role reference table is empty")
	}

	table := &roleTable{
		roles:    make([]*model.Entitlement, 0, len(file.Roles)),
		byID:     make(map[string]*model.Entitlement, len(file.Roles)),
		idByName: make(map[string]string, len(file.Roles)),
	}

	for _, role := range file.Roles {
		entitlement := &model.Entitlement{
			ID:          strconv.FormatInt(role.ID, 10),
			Name:        role.Name,
			Description: role.Description,
			Type:        model.EntitlementTypeRole,
		}
		table.roles = append(table.roles, entitlement)
		table.byID[entitlement.ID] = entitlement
		table.idByName[entitlement.Name] = entitlement.ID
	}

	return table, nil
}

func mustLoadRoleTable() *roleTable {
	table, err := loadRoleTable(rolesYAML)
	if err != nil {
		panic(err)
	}
	return table
}

// All returns every role in table order.
func (t *roleTable) All() []*model.Entitlement {
	roles := make([]*model.Entitlement, len(t.roles))
	copy(roles, t.roles)
	return roles
}

// ByID looks a role up by its numeric-string id.
func (t *roleTable) ByID(id string) (*model.Entitlement, bool) {
	role, ok := t.byID[id]
	return role, ok
}

// IDByName resolves a role display name to its id.
func (t *roleTable) IDByName(name string) (string, bool) {
	id, ok := t.idByName[name]
	return id, ok
}
