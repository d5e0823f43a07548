package cli

import "strings"

// Kind tipo de comando del bucle interactivo.
type Kind string

const (
	KindHelp   Kind = "help"
	KindExit   Kind = "exit"
	KindInsert Kind = "insert"
	KindFind   Kind = "find"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
	KindList   Kind = "list"
)

var kinds = []Kind{KindHelp, KindExit, KindInsert, KindFind, KindUpdate, KindDelete, KindList}

// ParseCommand reconoce el nombre del comando sin distinguir mayúsculas.
func ParseCommand(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range kinds {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

// HelpText texto del comando help.
const HelpText = `The program is designed to store, view and edit customer data
Commands:
	'insert' - insert a new customer
		arguments: customer_id full_name position organization_name email phone
	'find' - searches for a customer
		arguments: 'one of the customer arguments' 'argument value'
	'update' - update a customer
		arguments: customer_id, then pairs of 'argument name' 'argument value' (empty name to finish)
	'delete' - removes customer
		arguments: customer_id
	'list' - displays a list of customers sorted by the listed arguments
		arguments: 'any number of customer arguments separated by a space'
	'exit' - exit the program
Type 'cancel' at any prompt to abort the current command.
`
