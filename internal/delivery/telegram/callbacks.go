package telegram

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback actions. The payload format is "action:arg" so handlers get
// the target id from the button itself instead of parsing message text.
const (
	cbCurrency     = "cur"
	cbNetwork      = "net"
	cbOrderBack    = "back"
	cbOrderPaid    = "paid"
	cbOrderCancel  = "cancel"
	cbOrderConfirm = "confirm"
	cbOrderAbort   = "abort"

	cbMyOrdersPage = "my_page"

	cbEditProfile = "edit"

	cbAdmComplete   = "adm_complete"
	cbAdmCompleteGo = "adm_complete_go"
	cbAdmCancel     = "adm_cancel"
	cbAdmCancelGo   = "adm_cancel_go"
	cbAdmDismiss    = "adm_dismiss"
	cbAdmOrdersPage = "adm_page"
	cbMailGo        = "mail_go"
	cbMailAbort     = "mail_abort"
)

func callbackData(action, arg string) string {
	return action + ":" + arg
}

func callbackID(action string, id int64) string {
	return callbackData(action, strconv.FormatInt(id, 10))
}

func parseCallback(data string) (action, arg string, err error) {
	action, arg, found := strings.Cut(data, ":")
	if !found || action == "" {
		return "", "", fmt.Errorf("malformed callback payload: %q", data)
	}
	return action, arg, nil
}

// parseCallbackID reads the numeric argument of an id-carrying action.
func parseCallbackID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad callback id %q", arg)
	}
	return id, nil
}
