package types

import "fmt"

// The message types below are hand-written rather than protoc-generated, so
// the proto.Message marker methods required by sdk.Msg are provided here.

// Reset implements the proto.Message interface
func (msg *MsgCreatePair) Reset() { *msg = MsgCreatePair{} }

// String implements the proto.Message interface
func (msg *MsgCreatePair) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgCreatePair) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgLpTokenIssueCallback) Reset() { *msg = MsgLpTokenIssueCallback{} }

// String implements the proto.Message interface
func (msg *MsgLpTokenIssueCallback) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgLpTokenIssueCallback) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgSetPairActive) Reset() { *msg = MsgSetPairActive{} }

// String implements the proto.Message interface
func (msg *MsgSetPairActive) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetPairActive) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgSetPairActiveNoSwap) Reset() { *msg = MsgSetPairActiveNoSwap{} }

// String implements the proto.Message interface
func (msg *MsgSetPairActiveNoSwap) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetPairActiveNoSwap) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgSetPairInactive) Reset() { *msg = MsgSetPairInactive{} }

// String implements the proto.Message interface
func (msg *MsgSetPairInactive) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetPairInactive) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgAddBaseToken) Reset() { *msg = MsgAddBaseToken{} }

// String implements the proto.Message interface
func (msg *MsgAddBaseToken) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgAddBaseToken) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgRemoveBaseToken) Reset() { *msg = MsgRemoveBaseToken{} }

// String implements the proto.Message interface
func (msg *MsgRemoveBaseToken) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgRemoveBaseToken) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgSetLpFee) Reset() { *msg = MsgSetLpFee{} }

// String implements the proto.Message interface
func (msg *MsgSetLpFee) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetLpFee) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgSetOwnerFee) Reset() { *msg = MsgSetOwnerFee{} }

// String implements the proto.Message interface
func (msg *MsgSetOwnerFee) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetOwnerFee) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgWithdrawFees) Reset() { *msg = MsgWithdrawFees{} }

// String implements the proto.Message interface
func (msg *MsgWithdrawFees) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgWithdrawFees) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgSwapFixedInput) Reset() { *msg = MsgSwapFixedInput{} }

// String implements the proto.Message interface
func (msg *MsgSwapFixedInput) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSwapFixedInput) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgSwapFixedOutput) Reset() { *msg = MsgSwapFixedOutput{} }

// String implements the proto.Message interface
func (msg *MsgSwapFixedOutput) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSwapFixedOutput) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgAddLiquidity) Reset() { *msg = MsgAddLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgAddLiquidity) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgRemoveLiquidity) Reset() { *msg = MsgRemoveLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgRemoveLiquidity) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgActivate) Reset() { *msg = MsgActivate{} }

// String implements the proto.Message interface
func (msg *MsgActivate) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgActivate) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgDeactivate) Reset() { *msg = MsgDeactivate{} }

// String implements the proto.Message interface
func (msg *MsgDeactivate) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgDeactivate) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgSetLaunchpadAddress) Reset() { *msg = MsgSetLaunchpadAddress{} }

// String implements the proto.Message interface
func (msg *MsgSetLaunchpadAddress) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSetLaunchpadAddress) ProtoMessage() {}
