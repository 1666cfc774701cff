// Package serviceorder contains the ServiceOrder aggregate and its lifecycle
// state registry. A service order moves through a fixed, totally ordered
// pipeline of fifteen statuses grouped into four phases (commercial,
// operational, closing, administrative). The aggregate only ever advances to
// the immediate successor of its current status; whether an advance is
// allowed at all is decided by the transition guard in the services package,
// which reads the order's fields and its attached evidence records.
package serviceorder
