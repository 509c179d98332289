package contagiongo

import (
	"os"
	"testing"
)

func writeTempContactLog(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "contacts-*.csv")
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "creating temp contact log", err)
	}
	defer f.Close()
	if _, err := f.WriteString(contents); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "writing temp contact log", err)
	}
	return f.Name()
}

func TestLoadContactLogParsesRows(t *testing.T) {
	path := writeTempContactLog(t, "timestamp,id_i,id_j,rssi\n0,1,2,-60\n300,1,3,-55\n")
	log, err := LoadContactLog(path)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "loading a well-formed contact log", err)
	}
	if l := len(log.IDList()); l != 3 {
		t.Errorf(UnequalIntParameterError, "number of distinct ids", 3, l)
	}
	if log.Tmax != 300 {
		t.Errorf(UnequalIntParameterError, "Tmax", 300, log.Tmax)
	}
}

func TestLoadContactLogDropsNegativeIDJ(t *testing.T) {
	path := writeTempContactLog(t, "timestamp,id_i,id_j,rssi\n0,1,-1,-60\n300,1,2,-55\n")
	log, err := LoadContactLog(path)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "loading a contact log with a dropped row", err)
	}
	if _, ok := log.ContactsAt[0]; ok {
		t.Errorf("row with id_j < 0 was not dropped")
	}
}

func TestLoadContactLogSkipsMalformedRows(t *testing.T) {
	path := writeTempContactLog(t, "timestamp,id_i,id_j,rssi\nnotanumber,1,2,-60\n300,1,2,-55\n")
	log, err := LoadContactLog(path)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "loading a contact log with a malformed row", err)
	}
	if len(log.ContactsAt) != 1 {
		t.Errorf(UnequalIntParameterError, "number of usable timestamps", 1, len(log.ContactsAt))
	}
}

func TestLoadContactLogRejectsEmptyResult(t *testing.T) {
	path := writeTempContactLog(t, "timestamp,id_i,id_j,rssi\n")
	if _, err := LoadContactLog(path); err == nil {
		t.Errorf(ExpectedErrorWhileError, "loading an empty contact log")
	}
}

func TestFirstAppearanceDerivedInAscendingOrder(t *testing.T) {
	path := writeTempContactLog(t, "timestamp,id_i,id_j,rssi\n600,5,6,-60\n0,1,2,-55\n300,2,3,-50\n")
	log, err := LoadContactLog(path)
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "loading contact log", err)
	}
	if log.FirstAppearance[1] != 0 {
		t.Errorf(UnequalIntParameterError, "first appearance of id 1", 0, log.FirstAppearance[1])
	}
	if log.FirstAppearance[3] != 300 {
		t.Errorf(UnequalIntParameterError, "first appearance of id 3", 300, log.FirstAppearance[3])
	}
}
