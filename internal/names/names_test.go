package names

import "testing"

func TestUpperCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"getSupportedTypes", "GetSupportedTypes"},
		{"ping", "Ping"},
		{"x", "X"},
	}
	for _, tt := range tests {
		if got := UpperCamel(tt.in); got != tt.want {
			t.Errorf("UpperCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResponseClass(t *testing.T) {
	if got := ResponseClass("fetchMany"); got != "FetchManyResponse" {
		t.Errorf("ResponseClass = %q", got)
	}
}

func TestTransactionConstant(t *testing.T) {
	if got := TransactionConstant("setLight"); got != "TRANSACTION_setLight" {
		t.Errorf("TransactionConstant = %q", got)
	}
}
